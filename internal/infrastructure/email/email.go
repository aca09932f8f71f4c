// Package email sends transactional mail through the Resend API.
// Order placement notifies the administrator; failures are logged and
// never surfaced to the caller, since the order is already recorded.
package email

import (
	"fmt"

	"hexachats_server/internal/config"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Sender is the narrow interface services depend on.
type Sender interface {
	Send(to, subject, html string) error
}

// Client wraps the Resend client.
type Client struct {
	client      *resend.Client
	fromName    string
	fromAddress string
}

// NewClient builds the email client from config.
func NewClient(cfg *config.EmailConfig) *Client {
	return &Client{
		client:      resend.NewClient(cfg.APIKey),
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
	}
}

// Send delivers one HTML email.
func (c *Client) Send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromAddress),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

// SendOrderNotification formats and delivers the admin alert for a new
// order through any Sender.
func SendOrderNotification(s Sender, to, orderUuid, nickname, serviceName string, quantity int, totalCents int64) {
	html := fmt.Sprintf(
		"<p>New order <strong>%s</strong></p><p>%s ordered %d x %s for $%.2f.</p>",
		orderUuid, nickname, quantity, serviceName, float64(totalCents)/100,
	)
	if err := s.Send(to, "New order "+orderUuid, html); err != nil {
		zap.L().Error("order notification email failed", zap.String("order", orderUuid), zap.Error(err))
	}
}

var _ Sender = (*Client)(nil)
