package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a placed order. This service only
// ever creates orders in StatusPendingPayment; the remaining transitions
// belong to the order-management back office.
type OrderStatus string

const (
	StatusPendingPayment  OrderStatus = "pending-payment"
	StatusPaymentVerified OrderStatus = "payment-verified"
	StatusInProgress      OrderStatus = "in-progress"
	StatusQualityCheck    OrderStatus = "quality-check"
	StatusReadyDispatch   OrderStatus = "ready-dispatch"
	StatusOutForDelivery  OrderStatus = "out-for-delivery"
	StatusDelivered       OrderStatus = "delivered"
	StatusCancelled       OrderStatus = "cancelled"
)

// OrderNumberPattern matches order numbers of the form LC-YYYY-NNNN.
var OrderNumberPattern = regexp.MustCompile(`^LC-\d{4}-\d{4}$`)

// FormatOrderNumber renders the public order number. The sequence is
// assigned per calendar year by the repository.
func FormatOrderNumber(year, seq int) string {
	return fmt.Sprintf("LC-%04d-%04d", year, seq)
}

// Order is the immutable record created once a draft passes every step
// validator. The draft and its price breakdown are snapshotted verbatim.
type Order struct {
	ID        string           `json:"orderId"`
	Number    string           `json:"orderNumber"`
	Status    OrderStatus      `json:"status"`
	Draft     CustomOrderDraft `json:"draft"`
	Pricing   PriceBreakdown   `json:"pricing"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NewOrder assembles an order from a validated draft. The order number is
// left blank; the repository assigns it inside the insert transaction so
// it stays unique under concurrent submissions.
func NewOrder(d *CustomOrderDraft, pricing PriceBreakdown) *Order {
	return &Order{
		ID:        uuid.NewString(),
		Status:    StatusPendingPayment,
		Draft:     *d,
		Pricing:   pricing,
		CreatedAt: time.Now().UTC(),
	}
}

// Summary is the slice of an order handed to the notification dispatcher.
type Summary struct {
	OrderNumber  string `json:"orderNumber"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	Email        string `json:"email,omitempty"`
	Total        int    `json:"total"`
}

// Summarize extracts the notification summary from an order.
func (o *Order) Summarize() Summary {
	return Summary{
		OrderNumber:  o.Number,
		CustomerName: o.Draft.CustomerInfo.FullName,
		Phone:        o.Draft.CustomerInfo.Phone,
		WhatsApp:     o.Draft.CustomerInfo.WhatsApp,
		Email:        o.Draft.CustomerInfo.Email,
		Total:        o.Pricing.Total,
	}
}
