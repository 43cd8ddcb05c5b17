package mail

//go:generate mockgen -source=mail.go -package=mail -destination=mail_mock.go

import (
	"context"
	"errors"
	"sync"

	gomail "gopkg.in/gomail.v2"
)

// Message is a plain text mail message.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer sends mail.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ServiceConfig holds configuration for the SMTP mailer.
type ServiceConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"25"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM" envDefault:"converge@localhost"`
}

// ErrNoRecipients is returned when a message has no recipients.
var ErrNoRecipients = errors.New("mail: message has no recipients")

type smtpMailer struct {
	conf ServiceConfig
	send func(msgs ...*gomail.Message) error
}

// New creates a mailer sending through the configured SMTP server.
func New(conf ServiceConfig) Mailer {
	d := gomail.NewDialer(conf.Host, conf.Port, conf.User, conf.Password)
	return &smtpMailer{conf: conf, send: d.DialAndSend}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.send(compose(m.conf.From, msg))
}

// compose builds a plain text message. Headers are encoded as RFC 2047
// words when they are not ASCII.
func compose(from string, msg Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	return gm
}

// Outbox is a Mailer keeping sent messages in memory.
type Outbox struct {
	sent []Message
	mu   sync.Mutex
}

// Send records msg.
func (o *Outbox) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

// Sent returns the messages sent so far.
func (o *Outbox) Sent() []Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Message(nil), o.sent...)
}
