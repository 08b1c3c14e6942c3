package mailer

import (
	"context"
)

// Sender delivers relayed form submissions
type Sender interface {
	// Verify checks connectivity and authentication without sending anything
	Verify(ctx context.Context) error
	// Send delivers exactly one message
	Send(ctx context.Context, msg *Message) error
}

// Message is a transport-neutral email
type Message struct {
	FromName    string
	FromAddress string
	ReplyTo     string
	To          []string
	Subject     string
	Body        string
	Headers     map[string]string
	Attachments []Attachment
}

// Attachment is a file attached to a Message
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
