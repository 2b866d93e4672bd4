package mockmail_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contacts/internal/config"
	"contacts/internal/email"
	"contacts/internal/email/mockmail"
	"contacts/internal/lib/logger/sl/sldiscard"
)

func TestSend(t *testing.T) {
	mailer := mockmail.New(config.Email{From: "noreply@example.com"}, sldiscard.NewDiscardLogger())

	require.NoError(t, mailer.SendVerification("user@example.com", "http://x/verify"))
	require.NoError(t, mailer.SendPasswordReset("user@example.com", "http://x/reset"))

	sent := mailer.Sent()
	require.Len(t, sent, 2)
	require.Equal(t, email.SubjectVerification, sent[0].Subject)
	require.Equal(t, email.SubjectReset, sent[1].Subject)
	require.Contains(t, sent[1].Body, "http://x/reset")
}

func TestSendInvalid(t *testing.T) {
	mailer := mockmail.New(config.Email{}, sldiscard.NewDiscardLogger())

	err := mailer.SendVerification(mockmail.InvalidEmail, "http://x/verify")
	require.ErrorIs(t, err, mockmail.ErrInvalidEmail)
	require.Empty(t, mailer.Sent())
}
