package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/projectdesk/internal/domain/errors"
	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/domain/repository"
)

// ModerationUseCase approves reviews for public display.
type ModerationUseCase struct {
	reviews repository.ReviewRepository
	clock   Clock
	locks   *WriteLocks
	events  EventPublisher
	logger  *slog.Logger
}

// NewModerationUseCase constructs ModerationUseCase.
func NewModerationUseCase(reviews repository.ReviewRepository, clock Clock, locks *WriteLocks, events EventPublisher, logger *slog.Logger) *ModerationUseCase {
	return &ModerationUseCase{reviews: reviews, clock: clock, locks: locks, events: events, logger: logger}
}

// ApproveReview approves the first review with the given id. Approving an
// already approved review returns it unchanged without writing.
func (u *ModerationUseCase) ApproveReview(ctx context.Context, id int64) (*model.Review, error) {
	u.locks.reviews.Lock()
	defer u.locks.reviews.Unlock()

	review, err := u.reviews.Find(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	if !review.Approve(u.clock()) {
		return review, nil
	}

	if err := u.reviews.SetApproved(ctx, id, *review.ApprovedAt); err != nil {
		return nil, fmt.Errorf("save reviews: %w", err)
	}

	u.logger.Info("review approved", slog.Int64("id", review.ID), slog.String("name", review.Name))
	u.events.Publish(model.Event{Kind: model.EventReviewApproved, RecordID: review.ID, OccurredAt: *review.ApprovedAt, Payload: *review})

	return review, nil
}
