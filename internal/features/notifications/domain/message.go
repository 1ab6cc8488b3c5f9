package domain

// Channel identifies a delivery channel for outbound messages.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message is one outbound notification. Delivery is best-effort: a failed
// or dropped message never affects the transaction that produced it.
type Message struct {
	Channel     Channel `json:"channel"`
	Recipient   string  `json:"recipient"`
	Subject     string  `json:"subject,omitempty"`
	Body        string  `json:"body"`
	OrderNumber string  `json:"orderNumber,omitempty"`
}
