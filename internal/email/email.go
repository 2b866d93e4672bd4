// Package email renders the messages the service mails to its users.
package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	SubjectVerification = "Confirm your email"
	SubjectReset        = "Reset your password"
)

var (
	verificationTmpl = template.Must(template.New("verification").Parse(
		`<p>Hello {{.Email}},</p>
<p>Please confirm your email address by following the link below.</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>`))

	resetTmpl = template.Must(template.New("reset").Parse(
		`<p>Hello {{.Email}},</p>
<p>Somebody asked to reset the password of your account. If it was you, follow the link below.</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>Otherwise ignore this message.</p>`))
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type data struct {
	Email string
	Link  string
}

func Verification(to, link string) (Message, error) {
	return render(SubjectVerification, verificationTmpl, to, link)
}

func PasswordReset(to, link string) (Message, error) {
	return render(SubjectReset, resetTmpl, to, link)
}

func render(subject string, tmpl *template.Template, to, link string) (Message, error) {
	const op = "email.render"

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data{Email: to, Link: link}); err != nil {
		return Message{}, fmt.Errorf("%s: Executing %s template error: %w", op, tmpl.Name(), err)
	}

	return Message{To: to, Subject: subject, Body: body.String()}, nil
}
