package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	domainErrors "github.com/polkiloo/projectdesk/internal/domain/errors"
	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/domain/repository"
)

// collection is a typed view over one named store collection. Reads decode
// into T; writes operate on the raw records so that records and keys T does
// not describe are written back as they were loaded.
type collection[T any] struct {
	store  repository.Store
	name   string
	logger *slog.Logger
}

type recordHeader struct {
	ID *int64 `json:"id"`
}

// marshalRecord encodes v without escaping HTML characters in strings.
func marshalRecord(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func isObject(record json.RawMessage) bool {
	trimmed := bytes.TrimSpace(record)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// idOf returns the numeric id of a raw record.
func idOf(record json.RawMessage) (int64, bool) {
	if !isObject(record) {
		return 0, false
	}
	var head recordHeader
	if err := json.Unmarshal(record, &head); err != nil || head.ID == nil {
		return 0, false
	}
	return *head.ID, true
}

// decode fills T from record. Fields of the wrong type are left at their zero
// value; records that are not objects or fail to parse are reported as false.
func (c collection[T]) decode(index int, record json.RawMessage) (T, bool) {
	var item T
	if !isObject(record) {
		c.logger.Warn("skipping non-object record",
			slog.String("collection", c.name),
			slog.Int("index", index),
		)
		return item, false
	}

	err := json.Unmarshal(record, &item)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return item, true
	case errors.As(err, &typeErr):
		c.logger.Warn("record field has unexpected type",
			slog.String("collection", c.name),
			slog.Int("index", index),
			slog.String("error", err.Error()),
		)
		return item, true
	default:
		c.logger.Warn("skipping undecodable record",
			slog.String("collection", c.name),
			slog.Int("index", index),
			slog.String("error", err.Error()),
		)
		return item, false
	}
}

func (c collection[T]) list(ctx context.Context) ([]T, error) {
	raw, err := c.store.Load(ctx, c.name)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(raw))
	for i, record := range raw {
		if item, ok := c.decode(i, record); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (c collection[T]) maxID(ctx context.Context) (int64, error) {
	raw, err := c.store.Load(ctx, c.name)
	if err != nil {
		return 0, err
	}

	var maxID int64
	for _, record := range raw {
		if id, ok := idOf(record); ok {
			maxID = max(maxID, id)
		}
	}
	return maxID, nil
}

func (c collection[T]) append(ctx context.Context, item T) error {
	raw, err := c.store.Load(ctx, c.name)
	if err != nil {
		return err
	}

	data, err := marshalRecord(item)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", c.name, err)
	}
	return c.store.Save(ctx, c.name, append(raw, data))
}

func (c collection[T]) find(ctx context.Context, id int64) (T, error) {
	var zero T
	raw, err := c.store.Load(ctx, c.name)
	if err != nil {
		return zero, err
	}

	for i, record := range raw {
		if recordID, ok := idOf(record); !ok || recordID != id {
			continue
		}
		item, ok := c.decode(i, record)
		if !ok {
			return zero, fmt.Errorf("decode %s record %d", c.name, id)
		}
		return item, nil
	}
	return zero, domainErrors.ErrNotFound
}

// patch overwrites the given keys of the first record with the id. Other keys
// keep their position and stored value; other records are untouched.
func (c collection[T]) patch(ctx context.Context, id int64, fields map[string]any) error {
	raw, err := c.store.Load(ctx, c.name)
	if err != nil {
		return err
	}

	encoded := make(map[string]json.RawMessage, len(fields))
	for key, value := range fields {
		data, err := marshalRecord(value)
		if err != nil {
			return fmt.Errorf("encode %s field %s: %w", c.name, key, err)
		}
		encoded[key] = data
	}

	for i, record := range raw {
		if recordID, ok := idOf(record); !ok || recordID != id {
			continue
		}
		patched, err := patchObject(record, encoded)
		if err != nil {
			return fmt.Errorf("patch %s record %d: %w", c.name, id, err)
		}
		raw[i] = patched
		return c.store.Save(ctx, c.name, raw)
	}
	return domainErrors.ErrNotFound
}

// patchObject rewrites a JSON object, replacing the values of keys present in
// fields and appending the missing ones in key order.
func patchObject(record json.RawMessage, fields map[string]json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(record))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	written := 0
	write := func(key string, value json.RawMessage) error {
		name, err := marshalRecord(key)
		if err != nil {
			return err
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
		written++
		return nil
	}

	seen := make(map[string]bool, len(fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if replacement, ok := fields[key]; ok {
			value = replacement
			seen[key] = true
		}
		if err := write(key, value); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if seen[key] {
			continue
		}
		if err := write(key, fields[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OrderRepository stores orders in the "orders" collection.
type OrderRepository struct {
	orders collection[model.Order]
}

// NewOrderRepository constructs OrderRepository.
func NewOrderRepository(store repository.Store, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{orders: collection[model.Order]{store: store, name: repository.OrdersCollection, logger: logger}}
}

// List returns all decodable orders in insertion order.
func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.orders.list(ctx)
}

// MaxID returns the highest numeric id stored, or zero.
func (r *OrderRepository) MaxID(ctx context.Context) (int64, error) {
	return r.orders.maxID(ctx)
}

// Append stores order after the existing records.
func (r *OrderRepository) Append(ctx context.Context, order model.Order) error {
	return r.orders.append(ctx, order)
}

// ReviewRepository stores reviews in the "reviews" collection.
type ReviewRepository struct {
	reviews collection[model.Review]
}

// NewReviewRepository constructs ReviewRepository.
func NewReviewRepository(store repository.Store, logger *slog.Logger) *ReviewRepository {
	return &ReviewRepository{reviews: collection[model.Review]{store: store, name: repository.ReviewsCollection, logger: logger}}
}

// List returns all decodable reviews in insertion order, approved or not.
func (r *ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	return r.reviews.list(ctx)
}

// MaxID returns the highest numeric id stored, or zero.
func (r *ReviewRepository) MaxID(ctx context.Context) (int64, error) {
	return r.reviews.maxID(ctx)
}

// Append stores review after the existing records.
func (r *ReviewRepository) Append(ctx context.Context, review model.Review) error {
	return r.reviews.append(ctx, review)
}

// Find returns the first review with id.
func (r *ReviewRepository) Find(ctx context.Context, id int64) (*model.Review, error) {
	review, err := r.reviews.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// SetApproved marks the first review with id approved at the given time.
func (r *ReviewRepository) SetApproved(ctx context.Context, id int64, at time.Time) error {
	return r.reviews.patch(ctx, id, map[string]any{
		"approved":   true,
		"approvedAt": at,
	})
}
