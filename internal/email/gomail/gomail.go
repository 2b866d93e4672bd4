package gomail

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/mail.v2"

	"contacts/internal/config"
	"contacts/internal/email"
)

type Email struct {
	Dialer *mail.Dialer
}

func New(config config.Email) *Email {
	d := mail.NewDialer(config.Host, config.Port, config.From, config.Password)
	d.TLSConfig = &tls.Config{ServerName: config.Host}

	return &Email{Dialer: d}
}

func (e *Email) SendVerification(to, link string) error {
	const op = "email.gomail.SendVerification"

	msg, err := email.Verification(to, link)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return e.send(op, msg)
}

func (e *Email) SendPasswordReset(to, link string) error {
	const op = "email.gomail.SendPasswordReset"

	msg, err := email.PasswordReset(to, link)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return e.send(op, msg)
}

func (e *Email) send(op string, msg email.Message) error {
	message := mail.NewMessage()
	message.SetHeader("From", e.Dialer.Username)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/html", msg.Body)

	err := e.Dialer.DialAndSend(message)
	if err != nil {
		return fmt.Errorf("%s: Sending email error: %w", op, err)
	}

	return nil
}
