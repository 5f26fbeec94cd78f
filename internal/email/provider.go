package email

import (
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
)

// Provider sends transactional mail. Callers treat failures as non-fatal.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// NewProvider returns the configured provider, or a no-op one when email is
// disabled so callers never have to nil-check.
func NewProvider(cfg *config.Config) Provider {
	if !cfg.Email.Enabled || cfg.Email.SMTPHost == "" {
		logger.Info("email disabled, using noop provider")
		return &noopProvider{}
	}
	return NewSMTPProvider(cfg)
}

type noopProvider struct{}

func (p *noopProvider) Send(to, subject, htmlBody string) error {
	logger.Debug("email suppressed", "to", to, "subject", subject)
	return nil
}
