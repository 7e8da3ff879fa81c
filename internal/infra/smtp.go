package infra

import (
	"fmt"
	"net/smtp"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for maintenance notifications.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configured reports whether SMTP settings are present. Notifications are
// optional: an unconfigured mailer is skipped, never an error.
func (m *Mailer) Configured() bool { return m.host != "" && m.user != "" }

// Send delivers a plain-text notification.
func (m *Mailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
