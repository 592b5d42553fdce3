package mailer

import (
	"fmt"
	"net/smtp"

	"vaccination-booking/pkg/utils"
)

// Mailer is the notification-dispatcher boundary. Send failures surface to the
// caller of the booking operation.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	host string
	port int
	from string
	auth smtp.Auth
}

func NewSMTPMailer(config utils.EmailConfig) *SMTPMailer {
	var auth smtp.Auth
	if config.User != "" {
		auth = smtp.PlainAuth("", config.User, config.Password, config.Host)
	}

	return &SMTPMailer{
		host: config.Host,
		port: config.Port,
		from: config.From,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		to, m.from, subject, body))
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	if err := smtp.SendMail(addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s via %s: %w", to, m.host, err)
	}

	return nil
}
