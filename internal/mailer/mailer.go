package mailer

import (
	"context"
	"errors"
	"fmt"
)

// Message is one outgoing HTML email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// SendError is the structured failure reported by the email provider.
type SendError struct {
	Message string
	Status  int
}

func (e *SendError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("send email failed (%d): %s", e.Status, e.Message)
	}
	return "send email failed: " + e.Message
}

// ErrNotConfigured is returned when no provider credentials were supplied.
var ErrNotConfigured = errors.New("email sender is not configured")

// Sender delivers transactional email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Unconfigured is the Sender used when no provider key is set.
type Unconfigured struct{}

func (Unconfigured) Send(context.Context, Message) error { return ErrNotConfigured }
