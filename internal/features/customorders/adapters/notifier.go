package adapters

import (
	"fmt"

	"lc-atelier/internal/features/customorders/domain"
	notifdomain "lc-atelier/internal/features/notifications/domain"
	notifports "lc-atelier/internal/features/notifications/ports"
)

// QueueNotifier implements ports.OrderNotifier by translating an order
// summary into channel messages and handing them to the dispatch queue.
// Enqueue never blocks, so order creation never waits on delivery.
type QueueNotifier struct {
	queue notifports.Queue
}

// NewQueueNotifier creates a new QueueNotifier.
func NewQueueNotifier(queue notifports.Queue) *QueueNotifier {
	return &QueueNotifier{queue: queue}
}

// NotifyOrderCreated queues the order-confirmation email and WhatsApp message.
func (n *QueueNotifier) NotifyOrderCreated(summary domain.Summary) {
	body := fmt.Sprintf(
		"Thank you %s! Your order %s has been received. Total: PKR %d. We will confirm once your payment is verified.",
		summary.CustomerName, summary.OrderNumber, summary.Total,
	)

	if summary.Email != "" {
		n.queue.Enqueue(notifdomain.Message{
			Channel:     notifdomain.ChannelEmail,
			Recipient:   summary.Email,
			Subject:     fmt.Sprintf("Order confirmation %s", summary.OrderNumber),
			Body:        body,
			OrderNumber: summary.OrderNumber,
		})
	}

	whatsapp := summary.WhatsApp
	if whatsapp == "" {
		whatsapp = summary.Phone
	}
	n.queue.Enqueue(notifdomain.Message{
		Channel:     notifdomain.ChannelWhatsApp,
		Recipient:   whatsapp,
		Body:        body,
		OrderNumber: summary.OrderNumber,
	})
}
