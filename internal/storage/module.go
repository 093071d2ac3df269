package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/projectdesk/internal/config"
	"github.com/polkiloo/projectdesk/internal/domain/repository"
	"github.com/polkiloo/projectdesk/internal/storage/file"
	"github.com/polkiloo/projectdesk/internal/storage/memory"
	"github.com/polkiloo/projectdesk/internal/storage/postgres"
)

// Module wires the configured store driver and the typed repositories on top of it.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		fx.Annotate(NewOrderRepository, fx.As(new(repository.OrderRepository))),
		fx.Annotate(NewReviewRepository, fx.As(new(repository.ReviewRepository))),
	),
)

type storeParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStore(p storeParams) (repository.Store, error) {
	switch p.Config.StorageDriver {
	case config.StorageFile:
		store, err := file.New(p.Config.DataDir, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Logger.Info("using file storage", slog.String("dir", p.Config.DataDir))
		return store, nil
	case config.StorageMemory:
		p.Logger.Warn("using in-memory storage, records are lost on restart")
		return memory.New(), nil
	case config.StoragePostgres:
		store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				store.Close()
				return nil
			},
		})
		p.Logger.Info("using postgres storage")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", p.Config.StorageDriver)
	}
}
