package service

import (
	"context"
	"sync"
	"time"

	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/features/notifications/domain"
	"lc-atelier/internal/features/notifications/ports"

	"go.uber.org/zap"
)

// sendTimeout bounds a single delivery attempt so a slow provider cannot
// stall the queue indefinitely.
const sendTimeout = 10 * time.Second

// Dispatcher implements ports.Queue with a bounded in-process queue and a
// single consumer goroutine. Enqueue never blocks: when the queue is full
// the message is dropped and logged. Delivery failures are logged and
// swallowed — notifications are fire-and-forget by contract.
type Dispatcher struct {
	senders []ports.Sender
	queue   chan domain.Message
	done    chan struct{}
	once    sync.Once
}

// NewDispatcher creates a Dispatcher and starts its worker.
func NewDispatcher(senders []ports.Sender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}

	d := &Dispatcher{
		senders: senders,
		queue:   make(chan domain.Message, queueSize),
		done:    make(chan struct{}),
	}

	go d.run()

	return d
}

// Enqueue hands a message to the worker without blocking.
func (d *Dispatcher) Enqueue(msg domain.Message) bool {
	select {
	case d.queue <- msg:
		return true
	default:
		logger.Get().Warn("Notification queue full, dropping message",
			zap.String("channel", string(msg.Channel)),
			zap.String("order_number", msg.OrderNumber),
		)
		return false
	}
}

// Close stops intake and blocks until the queued messages are drained.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg domain.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	for _, sender := range d.senders {
		if !sender.Supports(msg.Channel) {
			continue
		}

		if err := sender.Send(ctx, msg); err != nil {
			logger.Get().Error("Notification delivery failed",
				zap.String("channel", string(msg.Channel)),
				zap.String("order_number", msg.OrderNumber),
				zap.Error(err),
			)
		}
		return
	}

	logger.Get().Warn("No sender for notification channel",
		zap.String("channel", string(msg.Channel)),
		zap.String("order_number", msg.OrderNumber),
	)
}
