package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/projectdesk/internal/config"
	"github.com/polkiloo/projectdesk/internal/storage/file"
	"github.com/polkiloo/projectdesk/internal/storage/memory"
)

func TestNewStoreSelectsDriver(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	store, err := newStore(storeParams{
		Ctx:       context.Background(),
		Lifecycle: lc,
		Config:    &config.Config{StorageDriver: config.StorageFile, DataDir: t.TempDir()},
		Logger:    discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &file.Store{}, store)

	store, err = newStore(storeParams{
		Ctx:       context.Background(),
		Lifecycle: lc,
		Config:    &config.Config{StorageDriver: config.StorageMemory},
		Logger:    discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)
}

func TestNewStoreRejectsUnknownDriver(t *testing.T) {
	_, err := newStore(storeParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{StorageDriver: "redis"},
		Logger:    discardLogger(),
	})
	assert.ErrorContains(t, err, `unknown storage driver "redis"`)
}

func TestNewStorePostgresRequiresReachableDSN(t *testing.T) {
	_, err := newStore(storeParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{StorageDriver: config.StoragePostgres, DatabaseURI: ":://bad"},
		Logger:    discardLogger(),
	})
	assert.Error(t, err)
}
