// Package notify sends plain-text notification mail over SMTP.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"homescripts/internal/config"
)

const defaultTimeout = 30 * time.Second

// sender delivers composed messages. *mail.Client implements it.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer sends one message per call from the SMTP user to a fixed recipient.
type Mailer struct {
	cfg    config.SMTPConfig
	dial   func() (sender, error)
	logger *slog.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *slog.Logger) *Mailer {
	m := &Mailer{cfg: cfg, logger: logger.With("component", "mailer")}
	m.dial = m.newClient
	return m
}

// newClient connects with implicit TLS and PLAIN auth.
func (m *Mailer) newClient() (sender, error) {
	timeout := m.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(timeout),
	)
}

// Send mails body and reports whether delivery succeeded. Failures are
// logged, never returned.
func (m *Mailer) Send(ctx context.Context, body string) bool {
	if err := m.send(ctx, body); err != nil {
		m.logger.Error("failed to send notification",
			"recipient", m.cfg.Recipient,
			"error", err,
		)
		return false
	}
	m.logger.Info("notification sent", "recipient", m.cfg.Recipient)
	return true
}

func (m *Mailer) send(ctx context.Context, body string) error {
	msg, err := m.compose(body)
	if err != nil {
		return err
	}

	client, err := m.dial()
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (m *Mailer) compose(body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.User); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.cfg.Recipient); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(m.cfg.Subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
