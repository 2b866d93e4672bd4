package mockmail

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"contacts/internal/config"
	"contacts/internal/email"
)

// InvalidEmail is an address the mock refuses to deliver to.
const InvalidEmail = "invalid@mail"

var ErrInvalidEmail = errors.New("invalid email")

type Dialer struct {
	Host string
	Port int
	From string
	log  *slog.Logger
}

// Email logs messages instead of sending them and keeps them for inspection.
type Email struct {
	Dialer Dialer

	mu   sync.Mutex
	sent []email.Message
}

func New(config config.Email, log *slog.Logger) *Email {
	d := Dialer{Host: config.Host, Port: config.Port, From: config.From, log: log}

	return &Email{Dialer: d}
}

func (e *Email) SendVerification(to, link string) error {
	const op = "email.mockmail.SendVerification"

	msg, err := email.Verification(to, link)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return e.send(op, msg)
}

func (e *Email) SendPasswordReset(to, link string) error {
	const op = "email.mockmail.SendPasswordReset"

	msg, err := email.PasswordReset(to, link)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return e.send(op, msg)
}

// Sent returns a copy of every delivered message.
func (e *Email) Sent() []email.Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]email.Message(nil), e.sent...)
}

func (e *Email) send(op string, msg email.Message) error {
	if err := e.Dialer.Send(msg); err != nil {
		return fmt.Errorf("%s: Sending message error: %w", op, err)
	}

	e.mu.Lock()
	e.sent = append(e.sent, msg)
	e.mu.Unlock()

	return nil
}

func (dialer *Dialer) Send(msg email.Message) error {
	if msg.To == InvalidEmail {
		return ErrInvalidEmail
	}

	dialer.log.Debug("Message was sent", slog.String("From", dialer.From), slog.String("To", msg.To),
		slog.String("Subject", msg.Subject), slog.String("Body", msg.Body))

	return nil
}
