package main

import (
	"context"
	"errors"
	"testing"

	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/mailer/mailertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeMail() config.Mail {
	return config.Mail{
		SMTP:      config.SMTP{Host: "smtp.example.com", Port: 587, Username: "bot@example.com", Password: "secret"},
		ContactTo: "hello@example.com",
	}
}

func TestCheckSettings(t *testing.T) {
	assert.NoError(t, checkSettings(completeMail()))

	mail := completeMail()
	mail.ContactTo = ""
	err := checkSettings(mail)
	require.Error(t, err)
	assert.Equal(t, exitMissingSettings, exitCode(err))
	assert.Contains(t, err.Error(), "DEST_EMAIL_CONTACT")
}

func TestRunSend_MissingSettingsSkipsSMTP(t *testing.T) {
	sender := &mailertest.FakeSender{}

	err := runSend(context.Background(), sender, config.Mail{}, "TEST")
	assert.Equal(t, exitMissingSettings, exitCode(err))
	assert.Zero(t, sender.VerifyCalls())
	assert.Empty(t, sender.Sent())
}

func TestRunSend(t *testing.T) {
	sender := &mailertest.FakeSender{}

	require.NoError(t, runSend(context.Background(), sender, completeMail(), "staging"))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "[SMTP TEST] staging", sent[0].Subject)
	assert.Equal(t, []string{"hello@example.com"}, sent[0].To)
	assert.Equal(t, "bot@example.com", sent[0].FromAddress)
	assert.Equal(t, 1, sender.VerifyCalls())
}

func TestRunSend_Failures(t *testing.T) {
	t.Run("verify", func(t *testing.T) {
		sender := &mailertest.FakeSender{VerifyErr: errors.New("535 bad credentials")}
		err := runSend(context.Background(), sender, completeMail(), "TEST")
		assert.Equal(t, exitFailure, exitCode(err))
		assert.Empty(t, sender.Sent())
	})

	t.Run("send", func(t *testing.T) {
		sender := &mailertest.FakeSender{SendErr: errors.New("550 rejected")}
		err := runSend(context.Background(), sender, completeMail(), "TEST")
		assert.Equal(t, exitFailure, exitCode(err))
		assert.ErrorContains(t, err, "550 rejected")
	})
}

func TestExitCode_PlainError(t *testing.T) {
	assert.Equal(t, exitFailure, exitCode(errors.New("boom")))
}
