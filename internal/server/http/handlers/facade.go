package handlers

import (
	"context"

	"github.com/polkiloo/projectdesk/internal/domain/model"
)

// IntakeFacade accepts new orders and reviews.
type IntakeFacade interface {
	SubmitOrder(ctx context.Context, in model.OrderInput) (*model.Order, error)
	SubmitReview(ctx context.Context, in model.ReviewInput) (*model.Review, error)
}

// ModerationFacade approves reviews.
type ModerationFacade interface {
	ApproveReview(ctx context.Context, id int64) (*model.Review, error)
}

// RetrievalFacade lists stored records.
type RetrievalFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Reviews(ctx context.Context) ([]model.Review, error)
	PublishedReviews(ctx context.Context) ([]model.Review, error)
}

// HealthFacade reports whether the service can reach its store.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// ProjectDeskFacade aggregates the full set of operations used across handlers.
type ProjectDeskFacade interface {
	IntakeFacade
	ModerationFacade
	RetrievalFacade
	HealthFacade
}
