package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lc-atelier/internal/core/httpclient"
	"lc-atelier/internal/features/notifications/domain"
)

// WebhookSender posts messages for one channel to a configured webhook URL.
// An empty URL disables the channel entirely.
type WebhookSender struct {
	channel domain.Channel
	url     string
	client  *http.Client
}

// NewEmailSender creates a sender for the email channel.
func NewEmailSender(webhookURL string) *WebhookSender {
	return newWebhookSender(domain.ChannelEmail, webhookURL)
}

// NewWhatsAppSender creates a sender for the WhatsApp channel.
func NewWhatsAppSender(webhookURL string) *WebhookSender {
	return newWebhookSender(domain.ChannelWhatsApp, webhookURL)
}

func newWebhookSender(channel domain.Channel, webhookURL string) *WebhookSender {
	return &WebhookSender{
		channel: channel,
		url:     webhookURL,
		client:  httpclient.NewClient(10 * time.Second),
	}
}

// Supports implements ports.Sender.
func (s *WebhookSender) Supports(channel domain.Channel) bool {
	return s.url != "" && channel == s.channel
}

// Send implements ports.Sender by posting the message as JSON.
func (s *WebhookSender) Send(ctx context.Context, msg domain.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
