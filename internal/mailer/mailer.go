// Package mailer transmits the rendered notification as a single multipart
// message over an authenticated STARTTLS session.
package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"weather-mailer/internal/notify"
)

// DeliveryError covers authentication and transport failures. Fatal for the
// invocation; no retry.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// InlineImage binds image bytes to a content-id token referenced by the
// HTML body.
type InlineImage struct {
	CID  string
	Data []byte
}

type Mailer struct {
	host     string
	port     int
	username string
	password string
	logger   *zap.Logger
}

func New(host string, port int, username, password string, logger *zap.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger,
	}
}

// Send transmits one message from the configured sender to the recipient,
// with the plain-text body as primary part, the HTML body as alternative,
// and zero-to-two inline images embedded under their content-id names.
func (m *Mailer) Send(ctx context.Context, from, to string, msg notify.Message, images []InlineImage) error {
	mm := mail.NewMsg()
	if err := mm.From(from); err != nil {
		return &DeliveryError{Err: fmt.Errorf("invalid sender address: %w", err)}
	}
	if err := mm.To(to); err != nil {
		return &DeliveryError{Err: fmt.Errorf("invalid recipient address: %w", err)}
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Text)
	mm.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	for _, img := range images {
		// The embed name doubles as the content-id the HTML references.
		if err := mm.EmbedReader(img.CID, bytes.NewReader(img.Data)); err != nil {
			return &DeliveryError{Err: fmt.Errorf("embedding %s: %w", img.CID, err)}
		}
	}

	c, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return &DeliveryError{Err: err}
	}

	if err := c.DialAndSendWithContext(ctx, mm); err != nil {
		return &DeliveryError{Err: err}
	}

	m.logger.Info("Email sent successfully",
		zap.String("to", to),
		zap.String("subject", msg.Subject),
		zap.Int("inline_images", len(images)))

	return nil
}
