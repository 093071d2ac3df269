package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/polkiloo/projectdesk/internal/domain/model"
)

// Notifier delivers an event to the operator.
type Notifier interface {
	Notify(ctx context.Context, event model.Event) error
}

// Chain notifies every member in order and joins their errors.
type Chain []Notifier

// Notify implements Notifier.
func (c Chain) Notify(ctx context.Context, event model.Event) error {
	var errs []error
	for _, n := range c {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes a one-line operator summary for each event.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, event model.Event) error {
	attrs := []any{
		slog.String("kind", string(event.Kind)),
		slog.Int64("id", event.RecordID),
		slog.Time("occurred_at", event.OccurredAt),
	}

	switch payload := event.Payload.(type) {
	case model.Order:
		attrs = append(attrs, orderAttrs(payload)...)
		n.logger.Info("new order", attrs...)
	case model.Review:
		attrs = append(attrs,
			slog.String("name", payload.Name),
			slog.Int("rating", int(payload.Rating)),
			slog.Bool("permission", payload.Permission),
			slog.Bool("approved", payload.Approved),
		)
		if event.Kind == model.EventReviewApproved {
			n.logger.Info("review approved", attrs...)
			return nil
		}
		n.logger.Info("new review", attrs...)
	default:
		n.logger.Info("event", attrs...)
	}
	return nil
}

func orderAttrs(o model.Order) []any {
	attrs := []any{
		slog.String("name", o.Name),
		slog.String("phone", o.Phone),
		slog.String("email", o.Email),
		slog.String("project_type", o.ProjectType),
	}
	if o.ProjectName != "" {
		attrs = append(attrs, slog.String("project_name", o.ProjectName))
	}
	if o.Price != nil {
		attrs = append(attrs, slog.String("price", o.Price.String()))
	}
	if o.PaymentMethod != "" {
		attrs = append(attrs, slog.String("payment_method", o.PaymentMethod))
	}
	if o.Urgency != "" {
		attrs = append(attrs, slog.String("urgency", o.Urgency))
	}
	return attrs
}
