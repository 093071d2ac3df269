package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/projectdesk/internal/adapter/notify"
	"github.com/polkiloo/projectdesk/internal/app"
	"github.com/polkiloo/projectdesk/internal/config"
	"github.com/polkiloo/projectdesk/internal/logger"
	"github.com/polkiloo/projectdesk/internal/server/http/handlers"
	"github.com/polkiloo/projectdesk/internal/server/http/router"
	"github.com/polkiloo/projectdesk/internal/storage"
	"github.com/polkiloo/projectdesk/internal/usecase"
	"github.com/polkiloo/projectdesk/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(d *worker.Dispatcher) usecase.EventPublisher { return d }),
		fx.Provide(func(f *app.ProjectDeskFacade) handlers.ProjectDeskFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
