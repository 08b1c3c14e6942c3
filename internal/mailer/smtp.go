package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"

	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/logging"

	"github.com/wneessen/go-mail"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/technaptix/site-api/internal/mailer"

// SMTPSender sends messages over SMTP. A new connection is dialed for every
// call; nothing is shared between requests.
type SMTPSender struct {
	settings config.SMTP
	tracer   trace.Tracer

	// tlsConfig overrides go-mail's default (system roots, ServerName = host)
	tlsConfig *tls.Config
}

// NewSMTPSender creates a sender for the given transport settings
func NewSMTPSender(settings config.SMTP) *SMTPSender {
	return &SMTPSender{
		settings: settings,
		tracer:   otel.Tracer(tracerName),
	}
}

func (s *SMTPSender) newClient() (*mail.Client, error) {
	opts := []mail.Option{}

	if s.settings.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	opts = append(opts, mail.WithPort(s.settings.Port))

	if s.tlsConfig != nil {
		opts = append(opts, mail.WithTLSConfig(s.tlsConfig))
	}

	if s.settings.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.settings.Timeout))
	}

	// The mechanism is picked from the server's AUTH list after STARTTLS,
	// so LOGIN-only servers work as well as PLAIN ones.
	if s.settings.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
			mail.WithUsername(s.settings.Username),
			mail.WithPassword(s.settings.Password),
		)
	}

	client, err := mail.NewClient(s.settings.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return client, nil
}

func (s *SMTPSender) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("smtp.host", s.settings.Host),
		attribute.Int("smtp.port", s.settings.Port),
		attribute.Bool("smtp.secure", s.settings.Secure),
	))
}

// Verify dials and authenticates, then closes the connection
func (s *SMTPSender) Verify(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "smtp.verify")
	defer span.End()

	client, err := s.newClient()
	if err != nil {
		return recordError(span, err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return recordError(span, fmt.Errorf("smtp verify failed: %w", err))
	}
	if err := client.Close(); err != nil {
		return recordError(span, fmt.Errorf("smtp verify close failed: %w", err))
	}

	logging.GetGlobalLogger().Info("SMTP transporter verified: host=%s, user=%s",
		s.settings.Host, yesNo(s.settings.Username != ""))
	return nil
}

// Send builds the MIME message and delivers it over a fresh connection
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	ctx, span := s.startSpan(ctx, "smtp.send")
	defer span.End()

	m, err := BuildMsg(msg)
	if err != nil {
		return recordError(span, err)
	}

	client, err := s.newClient()
	if err != nil {
		return recordError(span, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return recordError(span, fmt.Errorf("failed to send mail: %w", err))
	}

	if ids := m.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		span.SetAttributes(attribute.String("smtp.message_id", ids[0]))
		logging.GetGlobalLogger().Debug("Mail accepted by %s: message-id=%s", s.settings.Host, ids[0])
	}
	return nil
}

// BuildMsg converts a Message into a go-mail message
func BuildMsg(msg *Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.FromFormat(msg.FromName, msg.FromAddress); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("no recipient configured")
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	m.Subject(msg.Subject)
	for name, value := range msg.Headers {
		m.SetGenHeader(mail.Header(name), value)
	}
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	for _, a := range msg.Attachments {
		opts := []mail.FileOption{}
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err := m.AttachReader(a.Filename, bytes.NewReader(a.Data), opts...); err != nil {
			return nil, fmt.Errorf("failed to attach %s: %w", a.Filename, err)
		}
	}

	return m, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
