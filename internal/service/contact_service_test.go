package service

import (
	"context"
	"errors"
	"testing"

	"github.com/technaptix/site-api/internal/mailer/mailertest"
	"github.com/technaptix/site-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContact() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    "Grace Hopper",
		Email:   "grace@example.org",
		Company: "Navy",
		Inquiry: "Partnership",
		Message: "Let's talk compilers.",
	}
}

func TestContactService_Submit(t *testing.T) {
	sender := &mailertest.FakeSender{}
	svc := NewContactService(completeMail(), sender)

	require.NoError(t, svc.Submit(context.Background(), sampleContact()))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	msg := sent[0]

	assert.Equal(t, "Grace Hopper", msg.FromName)
	assert.Equal(t, "bot@example.com", msg.FromAddress, "contact mail is sent from the SMTP account, not FROM_EMAIL")
	assert.Equal(t, "grace@example.org", msg.ReplyTo)
	assert.Equal(t, []string{"hello@example.com"}, msg.To)
	assert.Equal(t, "[Contact] New contact inquiry from Grace Hopper (Partnership)", msg.Subject)
	assert.Equal(t, "Contact", msg.Headers["X-Category"])
	assert.Empty(t, msg.Attachments)
	assert.Zero(t, sender.VerifyCalls())

	assert.Contains(t, msg.Body, "Name: Grace Hopper\n")
	assert.Contains(t, msg.Body, "Company: Navy\n")
	assert.Contains(t, msg.Body, "Phone: N/A\n")
	assert.Contains(t, msg.Body, "Inquiry Type: Partnership\n")
	assert.Contains(t, msg.Body, "Message:\nLet's talk compilers.")
}

func TestContactMessage_Defaults(t *testing.T) {
	contact := sampleContact()
	contact.Inquiry = ""
	contact.Company = ""

	msg := ContactMessage(contact, completeMail())
	assert.Equal(t, "[Contact] New contact inquiry from Grace Hopper (General)", msg.Subject)
	assert.Contains(t, msg.Body, "Company: N/A\n")
	assert.Contains(t, msg.Body, "Inquiry Type: N/A\n")
}

func TestContactService_SendFailure(t *testing.T) {
	sender := &mailertest.FakeSender{SendErr: errors.New("mailbox unavailable")}
	svc := NewContactService(completeMail(), sender)

	err := svc.Submit(context.Background(), sampleContact())
	assert.True(t, errors.Is(err, ErrDelivery))
	assert.Len(t, sender.Sent(), 1)
}

func TestContactMessage_NoDestination(t *testing.T) {
	mail := completeMail()
	mail.ContactTo = ""

	assert.Empty(t, ContactMessage(sampleContact(), mail).To)
}
