package config

import (
	"fmt"
	"strings"
	"time"
)

const implicitTLSPort = 465

// SMTP holds the resolved SMTP transport settings
type SMTP struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS from the first byte
	Username string
	Password string
	Timeout  time.Duration
}

// HasCredentials reports whether both SMTP username and password are set
func (s SMTP) HasCredentials() bool {
	return s.Username != "" && s.Password != ""
}

// Mail holds the resolved settings used to relay form submissions
type Mail struct {
	SMTP      SMTP
	CareersTo string
	ContactTo string
	From      string // sender address for applications; FROM_EMAIL or the SMTP user
	Verify    bool
}

// Resolve applies the fallback chains to the raw environment values.
// It is pure: the same Config always yields the same Mail.
func Resolve(c *Config) Mail {
	secure := c.SMTPSecure == "true" || c.SMTPPort == implicitTLSPort

	smtp := SMTP{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Secure:   secure,
		Username: firstNonEmpty(c.SMTPUser, c.EmailUser),
		Password: firstNonEmpty(c.SMTPPass, c.EmailPass),
		Timeout:  c.SMTPTimeout,
	}

	return Mail{
		SMTP:      smtp,
		CareersTo: firstNonEmpty(c.DestEmailCareers, c.DestEmail),
		ContactTo: firstNonEmpty(c.DestEmailContact, c.DestEmail),
		From:      firstNonEmpty(c.FromEmail, smtp.Username),
		Verify:    c.SMTPVerify,
	}
}

// MissingForCareers lists the settings that prevent applications from being emailed
func (m Mail) MissingForCareers() []string {
	var missing []string
	if m.CareersTo == "" {
		missing = append(missing, "DEST_EMAIL_CAREERS/DEST_EMAIL")
	}
	if m.SMTP.Username == "" {
		missing = append(missing, "SMTP_USER/EMAIL_USER")
	}
	if m.SMTP.Password == "" {
		missing = append(missing, "SMTP_PASS/EMAIL_PASS")
	}
	return missing
}

// DeliveryMode selects how the careers form is delivered
type DeliveryMode string

const (
	DeliveryAuto DeliveryMode = "auto"
	DeliverySMTP DeliveryMode = "smtp"
	DeliveryDisk DeliveryMode = "disk"
)

// DefaultDeliveryMode is used when DELIVERY_MODE is unset. Production never
// infers disk delivery from missing secrets.
func DefaultDeliveryMode(production bool) DeliveryMode {
	if production {
		return DeliverySMTP
	}
	return DeliveryAuto
}

// ResolveDeliveryMode turns the requested mode into a concrete one.
// "auto" never survives resolution: it becomes smtp when the careers
// mail settings are complete and disk otherwise.
func ResolveDeliveryMode(requested string, mail Mail) (DeliveryMode, error) {
	missing := mail.MissingForCareers()

	switch DeliveryMode(strings.ToLower(strings.TrimSpace(requested))) {
	case DeliveryAuto, "":
		if len(missing) > 0 {
			return DeliveryDisk, nil
		}
		return DeliverySMTP, nil
	case DeliverySMTP:
		if len(missing) > 0 {
			return "", fmt.Errorf("delivery mode smtp requires %s", strings.Join(missing, ", "))
		}
		return DeliverySMTP, nil
	case DeliveryDisk:
		return DeliveryDisk, nil
	default:
		return "", fmt.Errorf("invalid delivery mode: %q", requested)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
