// Package mailer provides the SMTP transport behind the contact form.
package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/vezoprint/vezo-backend/internal/config"
	"github.com/vezoprint/vezo-backend/internal/service"
)

// SMTPMailer relays email through a configured SMTP server. It satisfies
// service.Mailer and is constructed once at startup; each Send dials,
// delivers, and hangs up — the volume here is a contact form, not a
// mailing list.
type SMTPMailer struct {
	cfg *config.Config
	log zerolog.Logger
}

// New creates an SMTPMailer from configuration.
func New(cfg *config.Config, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
		log: log.With().Str("component", "mailer").Logger(),
	}
}

// Send composes and delivers a single message. The SMTP round trip is
// bounded by ctx.
func (m *SMTPMailer) Send(ctx context.Context, email service.OutboundEmail) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.SMTPUser); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return fmt.Errorf("set reply-to: %w", err)
		}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.HTMLBody)

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if m.cfg.SMTPSecure {
		opts = append(opts, gomail.WithSSLPort(false))
	}
	if m.cfg.SMTPUser != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.SMTPUser),
			gomail.WithPassword(m.cfg.SMTPPass),
		)
	}

	client, err := gomail.NewClient(m.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	m.log.Debug().Str("to", email.To).Str("subject", email.Subject).Msg("Mail relayed")
	return nil
}
