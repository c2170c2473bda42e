package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/model"
)

// Contact errors.
var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrDeliveryFailed = errors.New("mail delivery failed")
)

// OutboundEmail is a composed message handed to the mail transport.
type OutboundEmail struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Mailer relays a composed email through an external transport.
type Mailer interface {
	Send(ctx context.Context, email OutboundEmail) error
}

// ContactService turns contact form submissions into outbound email.
// One synchronous best-effort attempt per request: no retry, no queue.
type ContactService struct {
	mailer   Mailer
	receiver string
	log      zerolog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(mailer Mailer, receiver string, log zerolog.Logger) *ContactService {
	return &ContactService{
		mailer:   mailer,
		receiver: receiver,
		log:      log.With().Str("component", "contact_service").Logger(),
	}
}

// Send validates the submission, composes the notification email, and
// relays it. A transport failure surfaces as ErrDeliveryFailed.
func (s *ContactService) Send(ctx context.Context, req model.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return ErrMissingFields
	}

	email := OutboundEmail{
		To:       s.receiver,
		ReplyTo:  req.Email,
		Subject:  "Contact form: " + req.Subject,
		HTMLBody: composeContactBody(req),
	}

	if err := s.mailer.Send(ctx, email); err != nil {
		s.log.Error().Err(err).Str("from", req.Email).Msg("Contact mail relay failed")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	s.log.Info().Str("from", req.Email).Str("subject", req.Subject).Msg("Contact mail sent")
	return nil
}

// composeContactBody renders the notification as a small HTML table of
// the submitted fields. Everything user-supplied is entity-escaped.
func composeContactBody(req model.ContactRequest) string {
	esc := html.EscapeString
	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return esc(s)
	}
	message := strings.ReplaceAll(esc(req.Message), "\n", "<br/>")

	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", esc(req.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", esc(req.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", orDash(req.Phone))
	fmt.Fprintf(&b, "<p><strong>Company:</strong> %s</p>", orDash(req.Company))
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", esc(req.Subject))
	fmt.Fprintf(&b, "<p><strong>Message:</strong><br/>%s</p>", message)
	return b.String()
}
