package mail

import (
	"context"
	"net"
	"net/smtp"
)

// Message is a single outbound notification email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends notification email. Failures degrade notification only; the
// caller never rolls back work because a send failed.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the SMTP relay settings. Host and From are required; Username
// and Password are optional (relays on localhost often run unauthenticated).
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer delivers mail through a single SMTP relay using PLAIN auth when
// credentials are configured.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer creates an SMTPMailer with the given configuration.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPMailer{cfg: cfg}
}

var _ Mailer = (*SMTPMailer)(nil)

// Send assembles the MIME message and submits it to the relay. The context is
// only consulted before dialing; net/smtp does not support cancellation
// mid-delivery.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	payload, err := buildMessage(m.cfg.From, msg)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, payload)
}
