package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUnknownCollection(t *testing.T) {
	records, err := New().Load(context.Background(), "orders")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	_, ok := New().Raw("orders")
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()
	records := []json.RawMessage{json.RawMessage(`{"id":1}`), json.RawMessage(`{"id":2}`)}

	require.NoError(t, store.Save(ctx, "reviews", records))

	loaded, err := store.Load(ctx, "reviews")
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	raw, ok := store.Raw("reviews")
	require.True(t, ok)
	assert.Equal(t, `[{"id":1},{"id":2}]`, string(raw))
}

func TestLoadedRecordsAreDetached(t *testing.T) {
	store := New()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "orders", []json.RawMessage{json.RawMessage(`{"id":1}`)}))

	loaded, err := store.Load(ctx, "orders")
	require.NoError(t, err)
	loaded[0][1] = 'X'

	again, err := store.Load(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(again[0]))
}

func TestSaveRejectsInvalidRecords(t *testing.T) {
	store := New()
	err := store.Save(context.Background(), "orders", []json.RawMessage{json.RawMessage(`{`)})
	assert.ErrorContains(t, err, "encode orders")

	_, ok := store.Raw("orders")
	assert.False(t, ok)
}
