package repository

import (
	"context"

	"github.com/polkiloo/projectdesk/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// Append adds a record after the stored ones and leaves every existing record
// as it was persisted, including records the Order model cannot represent.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	MaxID(ctx context.Context) (int64, error)
	Append(ctx context.Context, order model.Order) error
}
