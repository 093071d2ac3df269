package test

import (
	"context"

	"github.com/polkiloo/projectdesk/internal/domain/model"
)

// IntakeFacadeStub provides controllable behaviour for submission endpoints.
type IntakeFacadeStub struct {
	SubmitOrderFn  func(context.Context, model.OrderInput) (*model.Order, error)
	SubmitReviewFn func(context.Context, model.ReviewInput) (*model.Review, error)
}

// SubmitOrder delegates to provided function or echoes the input with id 1.
func (s IntakeFacadeStub) SubmitOrder(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, in)
	}
	return &model.Order{ID: 1, Name: in.Name, Phone: in.Phone, Email: in.Email, ProjectType: in.ProjectType, Description: in.Description, Status: model.OrderStatusNew}, nil
}

// SubmitReview delegates to provided function or echoes the input with id 1.
func (s IntakeFacadeStub) SubmitReview(ctx context.Context, in model.ReviewInput) (*model.Review, error) {
	if s.SubmitReviewFn != nil {
		return s.SubmitReviewFn(ctx, in)
	}
	return &model.Review{ID: 1, Name: in.Name, Rating: in.Rating, Text: in.Text, Permission: in.Permission, Approved: in.Permission}, nil
}

// ModerationFacadeStub simulates review approval.
type ModerationFacadeStub struct {
	ApproveFn func(context.Context, int64) (*model.Review, error)
}

// ApproveReview delegates to provided function or returns an approved review.
func (s ModerationFacadeStub) ApproveReview(ctx context.Context, id int64) (*model.Review, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, id)
	}
	return &model.Review{ID: id, Approved: true}, nil
}

// RetrievalFacadeStub returns preconfigured record sets.
type RetrievalFacadeStub struct {
	OrdersFn           func(context.Context) ([]model.Order, error)
	ReviewsFn          func(context.Context) ([]model.Review, error)
	PublishedReviewsFn func(context.Context) ([]model.Review, error)
}

// Orders returns configured orders or an empty set.
func (s RetrievalFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{}, nil
}

// Reviews returns configured reviews or an empty set.
func (s RetrievalFacadeStub) Reviews(ctx context.Context) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx)
	}
	return []model.Review{}, nil
}

// PublishedReviews returns configured approved reviews or an empty set.
func (s RetrievalFacadeStub) PublishedReviews(ctx context.Context) ([]model.Review, error) {
	if s.PublishedReviewsFn != nil {
		return s.PublishedReviewsFn(ctx)
	}
	return []model.Review{}, nil
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured error.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// ProjectDeskFacadeStub aggregates stubs for router tests.
type ProjectDeskFacadeStub struct {
	IntakeFacadeStub
	ModerationFacadeStub
	RetrievalFacadeStub
	HealthFacadeStub
}
