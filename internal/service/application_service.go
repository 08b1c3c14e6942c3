package service

import (
	"context"
	"fmt"
	"time"

	"github.com/technaptix/site-api/internal/api/sanitization"
	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/logging"
	"github.com/technaptix/site-api/internal/mailer"
	"github.com/technaptix/site-api/internal/models"
	"github.com/technaptix/site-api/internal/storage"
)

const (
	categoryCareers = "Careers"
	notAvailable    = "N/A"
)

// ApplicationResult tells the caller how an application was delivered
type ApplicationResult struct {
	Emailed bool
	SavedTo string // set only for disk delivery
}

// ApplicationService relays careers applications
type ApplicationService struct {
	mode   config.DeliveryMode
	mail   config.Mail
	sender mailer.Sender
	store  *storage.DiskStore
	now    func() time.Time
}

// NewApplicationService creates the service for a delivery mode resolved at startup
func NewApplicationService(mode config.DeliveryMode, mail config.Mail, sender mailer.Sender, store *storage.DiskStore) *ApplicationService {
	return &ApplicationService{
		mode:   mode,
		mail:   mail,
		sender: sender,
		store:  store,
		now:    time.Now,
	}
}

// Submit delivers a validated application
func (s *ApplicationService) Submit(ctx context.Context, app *models.Application) (*ApplicationResult, error) {
	if s.mode == config.DeliveryDisk {
		return s.saveToDisk(app)
	}
	return s.sendMail(ctx, app)
}

func (s *ApplicationService) saveToDisk(app *models.Application) (*ApplicationResult, error) {
	logger := logging.GetGlobalLogger()

	path, err := s.store.Save(app.CoverLetter.Filename, app.CoverLetter.Data, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	logger.Warn("DISK MODE: application saved to %s", path)
	logger.Warn("Applicant: firstName=%q lastName=%q email=%q areaOfInterest=%q",
		sanitization.SanitizeLogValue(app.FirstName),
		sanitization.SanitizeLogValue(app.LastName),
		sanitization.SanitizeLogValue(app.Email),
		sanitization.SanitizeLogValue(app.AreaOfInterest),
	)

	return &ApplicationResult{SavedTo: path}, nil
}

func (s *ApplicationService) sendMail(ctx context.Context, app *models.Application) (*ApplicationResult, error) {
	logger := logging.GetGlobalLogger()

	// A failed verify is only a warning; the send below reports the real outcome.
	if s.mail.Verify {
		if err := s.sender.Verify(ctx); err != nil {
			logger.Warn("SMTP verification failed: %v", err)
		}
	}

	if err := s.sender.Send(ctx, ApplicationMessage(app, s.mail)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	logger.Info("Application email sent successfully for %s", sanitization.SanitizeLogValue(app.Email))
	return &ApplicationResult{Emailed: true}, nil
}

// ApplicationMessage builds the email relayed to the careers mailbox
func ApplicationMessage(app *models.Application, mail config.Mail) *mailer.Message {
	area := orDefault(app.AreaOfInterest, notAvailable)
	filename := orDefault(app.CoverLetter.Filename, sanitization.DefaultCoverLetterName)

	return &mailer.Message{
		FromName:    app.FullName(),
		FromAddress: mail.From,
		ReplyTo:     app.Email,
		To:          []string{mail.CareersTo},
		Subject:     fmt.Sprintf("[Careers] New application from %s (%s)", app.FullName(), area),
		Headers:     map[string]string{"X-Category": categoryCareers},
		Body: fmt.Sprintf("New application received:\n\nName: %s\nEmail: %s\nArea of Interest: %s",
			app.FullName(), app.Email, area),
		Attachments: []mailer.Attachment{{
			Filename:    filename,
			ContentType: "application/pdf",
			Data:        app.CoverLetter.Data,
		}},
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
