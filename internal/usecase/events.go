package usecase

import "github.com/polkiloo/projectdesk/internal/domain/model"

// EventPublisher receives events after records are persisted. Publish must not block.
type EventPublisher interface {
	Publish(event model.Event)
}

// NopPublisher discards events.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(model.Event) {}
