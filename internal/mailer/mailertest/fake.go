// Package mailertest provides an in-memory mailer.Sender for tests.
package mailertest

import (
	"context"
	"sync"

	"github.com/technaptix/site-api/internal/mailer"
)

// FakeSender records every call instead of talking to an SMTP server
type FakeSender struct {
	VerifyErr error
	SendErr   error

	mu          sync.Mutex
	verifyCalls int
	sent        []*mailer.Message
}

func (f *FakeSender) Verify(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	return f.VerifyErr
}

// Send records the message even when SendErr is set, so tests can count attempts
func (f *FakeSender) Send(ctx context.Context, msg *mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.SendErr
}

// Sent returns every message passed to Send
func (f *FakeSender) Sent() []*mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*mailer.Message(nil), f.sent...)
}

// VerifyCalls returns how many times Verify was called
func (f *FakeSender) VerifyCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verifyCalls
}
