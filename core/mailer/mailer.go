package mailer

import (
	"go-calendar-api/core/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers rendered messages. Delivery is best-effort from the
// domain's point of view: callers decide whether a failure is surfaced.
type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) Send(to []string, subject, htmlBody string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(message)
}
