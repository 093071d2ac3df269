package repository

import (
	"context"
	"encoding/json"
)

// Collection names used by the application.
const (
	OrdersCollection  = "orders"
	ReviewsCollection = "reviews"
)

// Store persists named collections of records as JSON arrays.
//
// Load returns an empty sequence when the collection does not exist yet or its
// persisted form cannot be parsed; only genuine I/O failures are returned.
// Save replaces the whole collection atomically: afterwards the store holds
// either the new records or the previous ones, never a truncated mix.
type Store interface {
	Load(ctx context.Context, name string) ([]json.RawMessage, error)
	Save(ctx context.Context, name string, records []json.RawMessage) error
}
