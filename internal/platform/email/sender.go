// Package email provides transactional email delivery via SendGrid.
//
// Delivery is best-effort: flows dispatch a message and move on, and a
// send failure never fails the HTTP response that triggered it.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is one transactional email.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message synchronously.
// The interface exists so usecases can be tested with a fake.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SendGridSender implements Sender on the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

var _ Sender = (*SendGridSender)(nil)

// NewSendGridSender creates a sender posting with the given API key.
// All messages go out from fromAddr.
func NewSendGridSender(apiKey, fromAddr string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("TeamCall", fromAddr),
	}
}

// Send delivers msg. SendGrid reports rejections through the response
// status code, not the error, so both are checked.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	to := mail.NewEmail(msg.ToName, msg.To)
	m := mail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}

// LogSender logs messages instead of delivering them. It stands in
// for SendGrid when no API key is configured.
type LogSender struct{}

var _ Sender = (*LogSender)(nil)

// Send logs msg and drops it.
func (LogSender) Send(ctx context.Context, msg Message) error {
	slog.Info("email suppressed, no delivery configured", "to", msg.To, "subject", msg.Subject)
	return nil
}

// sendTimeout bounds one background delivery attempt.
const sendTimeout = 15 * time.Second

// Dispatcher sends messages in the background. Failures are logged and
// passed to the optional OnError hook; callers never see them.
type Dispatcher struct {
	sender Sender

	// OnError, when set, observes every failed delivery.
	OnError func(msg Message, err error)
}

// NewDispatcher wraps sender in fire-and-forget semantics.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Dispatch queues msg for delivery and returns immediately.
func (d *Dispatcher) Dispatch(msg Message) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := d.sender.Send(ctx, msg); err != nil {
			slog.Error("email delivery failed", "to", msg.To, "subject", msg.Subject, "error", err)
			if d.OnError != nil {
				d.OnError(msg, err)
			}
			return
		}
		slog.Info("email sent", "to", msg.To, "subject", msg.Subject)
	}()
}
