package email

import (
	"fmt"

	"jobboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

type SMTPProvider struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		dialer: gomail.NewDialer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
		),
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
	}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.fromEmail, p.fromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// WelcomeBody renders the registration welcome mail.
func WelcomeBody(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<h2>Welcome to the job board, %s!</h2>
<p>Your account has been created. You can now sign in and complete your profile.</p>`, name)
}
