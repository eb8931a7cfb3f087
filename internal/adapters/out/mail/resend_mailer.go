// Package mail sends transactional email through the Resend API.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bakery/internal/core/domain/model/order"

	"github.com/resend/resend-go/v2"
)

const defaultSender = "SweetShop <orders@sweetshop.example>"

// ResendMailer sends order-confirmation email via Resend. Without an
// API key the mailer runs in dev mode: it logs the would-be recipient
// and skips the send, so local setups need no account.
type ResendMailer struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// NewResendMailer creates a mailer. An empty apiKey enables dev mode;
// an empty from falls back to the default sender address.
func NewResendMailer(apiKey, from string, logger *slog.Logger) *ResendMailer {
	if logger == nil {
		logger = slog.Default()
	}
	if from == "" {
		from = defaultSender
	}

	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}

	return &ResendMailer{
		client: client,
		from:   from,
		logger: logger.With("component", "mail"),
	}
}

// SendOrderConfirmation emails the customer a summary of their order.
// An order without an email address is skipped.
func (m *ResendMailer) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	if o.CustomerEmail() == "" {
		return nil
	}
	if m.client == nil {
		m.logger.Info("mail API key not configured, skipping order confirmation",
			"to", o.CustomerEmail(), "orderId", o.ID().String())
		return nil
	}

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{o.CustomerEmail()},
		Subject: confirmationSubject(o),
		Html:    confirmationBody(o),
	})
	return err
}

func confirmationSubject(o *order.Order) string {
	id := o.ID().String()
	if len(id) > 8 {
		id = id[:8]
	}
	return "Order Confirmation #" + id
}

func confirmationBody(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>Thank you for your order, %s!</h1>", o.CustomerName())
	b.WriteString("<p>We have received your order and are preparing it.</p>")

	b.WriteString("<h2>Order Details</h2><ul>")
	for _, item := range o.Items() {
		fmt.Fprintf(&b, "<li>%dx %s</li>", item.Quantity(), item.Name())
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p><strong>Total: $%.2f</strong></p>", o.TotalAmount())
	fmt.Fprintf(&b, "<p>Shipping: %s</p>", o.Shipping().Method().String())
	if o.Shipping().Method() == order.LockerPickup {
		fmt.Fprintf(&b, "<p>Locker: %s - %s</p>",
			o.Shipping().LockerID(), o.Shipping().LockerAddress())
	}

	b.WriteString("<p>You will be notified when it ships!</p>")
	return b.String()
}
