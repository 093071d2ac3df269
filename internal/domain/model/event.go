package model

import "time"

// EventKind names an intake or moderation occurrence worth telling the operator about.
type EventKind string

const (
	EventOrderCreated   EventKind = "order.created"
	EventReviewCreated  EventKind = "review.created"
	EventReviewApproved EventKind = "review.approved"
)

// Event is published after a record change has been persisted.
type Event struct {
	Kind       EventKind `json:"kind"`
	RecordID   int64     `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}
