package mailer

import (
	"fmt"

	"github.com/JMacalaguing/DynaHCare-V2/internal/config"
	"gopkg.in/gomail.v2"
)

// Sender delivers outbound mail. The account service depends on this interface
// so tests can substitute a fake.
type Sender interface {
	SendSimple(to []string, subject, body string) error
}

// Mailer sends mail over SMTP using the settings from config.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

type Email struct {
	To      []string
	Subject string
	Body    string
}

func New() *Mailer {
	return &Mailer{
		from: config.SmtpFrom,
		dialer: gomail.NewDialer(
			config.SmtpHost,
			config.SmtpPort,
			config.SmtpUsername,
			config.SmtpPassword,
		),
	}
}

func (m *Mailer) Send(email Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)

	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) SendSimple(to []string, subject, body string) error {
	return m.Send(Email{To: to, Subject: subject, Body: body})
}
