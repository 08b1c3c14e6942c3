package service

import (
	"context"
	"fmt"

	"github.com/technaptix/site-api/internal/api/sanitization"
	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/logging"
	"github.com/technaptix/site-api/internal/mailer"
	"github.com/technaptix/site-api/internal/models"
)

const categoryContact = "Contact"

// ContactService relays contact inquiries. It always sends mail; there is
// no disk fallback for contact messages.
type ContactService struct {
	mail   config.Mail
	sender mailer.Sender
}

// NewContactService creates a new contact service
func NewContactService(mail config.Mail, sender mailer.Sender) *ContactService {
	return &ContactService{
		mail:   mail,
		sender: sender,
	}
}

// Submit sends a validated contact message. It does not retry.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	if err := s.sender.Send(ctx, ContactMessage(msg, s.mail)); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	logging.GetGlobalLogger().Info("Contact form email sent successfully from %s", sanitization.SanitizeLogValue(msg.Email))
	return nil
}

// ContactMessage builds the email relayed to the contact mailbox.
// The sender address is always the SMTP account.
func ContactMessage(msg *models.ContactMessage, mail config.Mail) *mailer.Message {
	var to []string
	if mail.ContactTo != "" {
		to = []string{mail.ContactTo}
	}

	body := fmt.Sprintf("New contact inquiry received:\n\n"+
		"Name: %s\n"+
		"Email: %s\n"+
		"Company: %s\n"+
		"Phone: %s\n"+
		"Inquiry Type: %s\n\n"+
		"Message:\n%s\n",
		msg.Name,
		msg.Email,
		orDefault(msg.Company, notAvailable),
		orDefault(msg.Phone, notAvailable),
		orDefault(msg.Inquiry, notAvailable),
		msg.Message,
	)

	return &mailer.Message{
		FromName:    msg.Name,
		FromAddress: mail.SMTP.Username,
		ReplyTo:     msg.Email,
		To:          to,
		Subject:     fmt.Sprintf("[Contact] New contact inquiry from %s (%s)", msg.Name, orDefault(msg.Inquiry, "General")),
		Headers:     map[string]string{"X-Category": categoryContact},
		Body:        body,
	}
}
