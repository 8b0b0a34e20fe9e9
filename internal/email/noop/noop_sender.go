package noop

import (
	"context"

	"github.com/rs/zerolog"

	"billbook/internal/domain"
	"billbook/internal/email"
	"billbook/internal/port"
)

type noopSender struct {
	log zerolog.Logger
}

// NewNoopSender creates an EmailSender that only logs what it would send.
func NewNoopSender(log zerolog.Logger) port.EmailSender {
	return &noopSender{log: log.With().Str("component", "noop_email").Logger()}
}

func (s *noopSender) SendDocumentSummary(_ context.Context, toEmail, toName string, summary domain.DocumentSummary) error {
	s.log.Info().
		Str("to", toEmail).
		Str("name", toName).
		Str("subject", email.Subject(summary)).
		Str("total", summary.RoundedTotal.StringFixed(2)).
		Msg("document email not sent")
	return nil
}
