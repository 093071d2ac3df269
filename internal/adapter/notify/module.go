package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/projectdesk/internal/config"
)

// Module exposes the operator notifier to fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) (Notifier, error) {
	logNotifier := NewLogNotifier(p.Logger)
	if p.Config.NotifyWebhookURL == "" {
		return logNotifier, nil
	}
	webhook, err := NewWebhookNotifier(p.Config.NotifyWebhookURL, p.Logger)
	if err != nil {
		return nil, err
	}
	return Chain{logNotifier, webhook}, nil
}
