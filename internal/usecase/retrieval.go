package usecase

import (
	"context"
	"fmt"

	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/domain/repository"
)

// RetrievalUseCase reads stored records back in insertion order.
type RetrievalUseCase struct {
	orders  repository.OrderRepository
	reviews repository.ReviewRepository
}

// NewRetrievalUseCase constructs RetrievalUseCase.
func NewRetrievalUseCase(orders repository.OrderRepository, reviews repository.ReviewRepository) *RetrievalUseCase {
	return &RetrievalUseCase{orders: orders, reviews: reviews}
}

// ListOrders returns every stored order.
func (u *RetrievalUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// ListReviews returns every stored review, including unapproved ones.
// Public surfaces must filter on Approved or use ListPublishedReviews.
func (u *RetrievalUseCase) ListReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.reviews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}

// ListPublishedReviews returns approved reviews only.
func (u *RetrievalUseCase) ListPublishedReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Approved {
			published = append(published, r)
		}
	}
	return published, nil
}
