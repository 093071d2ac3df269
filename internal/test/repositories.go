package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/projectdesk/internal/domain/errors"
	"github.com/polkiloo/projectdesk/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and can fail on demand.
// ListErr fails reads, SaveErr fails writes.
type OrderRepositoryStub struct {
	mu        sync.Mutex
	Orders    []model.Order
	ListErr   error
	SaveErr   error
	SaveCalls int
}

// List returns a copy of stored orders.
func (s *OrderRepositoryStub) List(context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Order{}, s.Orders...), nil
}

// MaxID returns the highest stored id.
func (s *OrderRepositoryStub) MaxID(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return 0, s.ListErr
	}
	var maxID int64
	for _, o := range s.Orders {
		maxID = max(maxID, o.ID)
	}
	return maxID, nil
}

// Append stores order unless SaveErr is set.
func (s *OrderRepositoryStub) Append(_ context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Orders = append(s.Orders, order)
	return nil
}

// ReviewRepositoryStub keeps reviews in memory and can fail on demand.
// ListErr fails reads, SaveErr fails writes.
type ReviewRepositoryStub struct {
	mu        sync.Mutex
	Reviews   []model.Review
	ListErr   error
	SaveErr   error
	SaveCalls int
}

// List returns a copy of stored reviews.
func (s *ReviewRepositoryStub) List(context.Context) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Review{}, s.Reviews...), nil
}

// MaxID returns the highest stored id.
func (s *ReviewRepositoryStub) MaxID(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return 0, s.ListErr
	}
	var maxID int64
	for _, r := range s.Reviews {
		maxID = max(maxID, r.ID)
	}
	return maxID, nil
}

// Append stores review unless SaveErr is set.
func (s *ReviewRepositoryStub) Append(_ context.Context, review model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Reviews = append(s.Reviews, review)
	return nil
}

// Find returns a copy of the first review with id.
func (s *ReviewRepositoryStub) Find(_ context.Context, id int64) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	for _, r := range s.Reviews {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SetApproved approves the first review with id unless SaveErr is set.
func (s *ReviewRepositoryStub) SetApproved(_ context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	for i := range s.Reviews {
		if s.Reviews[i].ID == id {
			s.Reviews[i].Approved = true
			s.Reviews[i].ApprovedAt = &at
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
