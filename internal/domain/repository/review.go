package repository

import (
	"context"
	"time"

	"github.com/polkiloo/projectdesk/internal/domain/model"
)

// ReviewRepository describes persistence operations with reviews.
//
// Find and SetApproved address the first review carrying the id and return
// errors.ErrNotFound when there is none. SetApproved rewrites only the
// approval fields of that record; other records are kept as persisted.
type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	MaxID(ctx context.Context) (int64, error)
	Append(ctx context.Context, review model.Review) error
	Find(ctx context.Context, id int64) (*model.Review, error)
	SetApproved(ctx context.Context, id int64, at time.Time) error
}
