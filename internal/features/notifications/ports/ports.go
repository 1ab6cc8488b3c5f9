package ports

import (
	"context"

	"lc-atelier/internal/features/notifications/domain"
)

// Sender delivers messages on one channel. This is a secondary port.
type Sender interface {
	// Supports reports whether this sender can deliver on the channel.
	Supports(channel domain.Channel) bool
	// Send delivers the message. Errors are logged by the dispatcher, never propagated.
	Send(ctx context.Context, msg domain.Message) error
}

// Queue accepts messages for asynchronous delivery. This is the primary port.
type Queue interface {
	// Enqueue hands a message to the dispatcher without blocking.
	// Returns false when the queue is full and the message was dropped.
	Enqueue(msg domain.Message) bool
	// Close stops intake, drains the queue, and waits for the worker.
	Close()
}
