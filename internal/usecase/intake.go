package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/domain/repository"
)

// IntakeUseCase creates orders and reviews.
type IntakeUseCase struct {
	orders  repository.OrderRepository
	reviews repository.ReviewRepository
	ids     IDGenerator
	clock   Clock
	locks   *WriteLocks
	events  EventPublisher
	logger  *slog.Logger
}

// NewIntakeUseCase constructs IntakeUseCase.
func NewIntakeUseCase(
	orders repository.OrderRepository,
	reviews repository.ReviewRepository,
	ids IDGenerator,
	clock Clock,
	locks *WriteLocks,
	events EventPublisher,
	logger *slog.Logger,
) *IntakeUseCase {
	return &IntakeUseCase{
		orders:  orders,
		reviews: reviews,
		ids:     ids,
		clock:   clock,
		locks:   locks,
		events:  events,
		logger:  logger,
	}
}

// SubmitOrder stores a new order with status "new" and returns it.
func (u *IntakeUseCase) SubmitOrder(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	in = normalizeOrderInput(in)
	if err := ValidateOrderInput(in); err != nil {
		return nil, err
	}

	u.locks.orders.Lock()
	defer u.locks.orders.Unlock()

	maxID, err := u.orders.MaxID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	order := model.Order{
		ID:            nextFreeID(u.ids, maxID),
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		ProjectType:   in.ProjectType,
		ProjectName:   in.ProjectName,
		Description:   in.Description,
		PaymentMethod: in.PaymentMethod,
		Price:         in.Price,
		Urgency:       in.Urgency,
		Timestamp:     u.clock(),
		Status:        model.OrderStatusNew,
	}

	if err := u.orders.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}

	u.logger.Info("order accepted",
		slog.Int64("id", order.ID),
		slog.String("project_type", order.ProjectType),
	)
	u.events.Publish(model.Event{Kind: model.EventOrderCreated, RecordID: order.ID, OccurredAt: order.Timestamp, Payload: order})

	return &order, nil
}

// SubmitReview stores a new review. Reviews submitted with publication
// permission are approved on arrival; the rest wait for moderation.
func (u *IntakeUseCase) SubmitReview(ctx context.Context, in model.ReviewInput) (*model.Review, error) {
	in = normalizeReviewInput(in)
	if err := ValidateReviewInput(in); err != nil {
		return nil, err
	}

	u.locks.reviews.Lock()
	defer u.locks.reviews.Unlock()

	maxID, err := u.reviews.MaxID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	now := u.clock()
	review := model.Review{
		ID:         nextFreeID(u.ids, maxID),
		Name:       in.Name,
		Email:      in.Email,
		Project:    in.Project,
		Rating:     in.Rating,
		Text:       in.Text,
		Permission: in.Permission,
		Timestamp:  now,
	}
	if in.Permission {
		review.Approve(now)
	}

	if err := u.reviews.Append(ctx, review); err != nil {
		return nil, fmt.Errorf("save reviews: %w", err)
	}

	u.logger.Info("review accepted",
		slog.Int64("id", review.ID),
		slog.Int("rating", int(review.Rating)),
		slog.Bool("approved", review.Approved),
	)
	u.events.Publish(model.Event{Kind: model.EventReviewCreated, RecordID: review.ID, OccurredAt: now, Payload: review})

	return &review, nil
}
