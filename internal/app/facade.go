package app

import (
	"context"

	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/domain/repository"
	"github.com/polkiloo/projectdesk/internal/usecase"
)

// HealthChecker is implemented by stores that can report their reachability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ProjectDeskFacade exposes use cases to the HTTP layer.
type ProjectDeskFacade struct {
	intake     *usecase.IntakeUseCase
	moderation *usecase.ModerationUseCase
	retrieval  *usecase.RetrievalUseCase
	store      repository.Store
}

func NewProjectDeskFacade(
	intake *usecase.IntakeUseCase,
	moderation *usecase.ModerationUseCase,
	retrieval *usecase.RetrievalUseCase,
	store repository.Store,
) *ProjectDeskFacade {
	return &ProjectDeskFacade{intake: intake, moderation: moderation, retrieval: retrieval, store: store}
}

func (f *ProjectDeskFacade) SubmitOrder(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	return f.intake.SubmitOrder(ctx, in)
}

func (f *ProjectDeskFacade) SubmitReview(ctx context.Context, in model.ReviewInput) (*model.Review, error) {
	return f.intake.SubmitReview(ctx, in)
}

func (f *ProjectDeskFacade) ApproveReview(ctx context.Context, id int64) (*model.Review, error) {
	return f.moderation.ApproveReview(ctx, id)
}

func (f *ProjectDeskFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.retrieval.ListOrders(ctx)
}

func (f *ProjectDeskFacade) Reviews(ctx context.Context) ([]model.Review, error) {
	return f.retrieval.ListReviews(ctx)
}

func (f *ProjectDeskFacade) PublishedReviews(ctx context.Context) ([]model.Review, error) {
	return f.retrieval.ListPublishedReviews(ctx)
}

// Health reports store reachability when the store supports it.
func (f *ProjectDeskFacade) Health(ctx context.Context) error {
	if checker, ok := f.store.(HealthChecker); ok {
		return checker.HealthCheck(ctx)
	}
	return nil
}
