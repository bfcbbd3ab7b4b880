package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"portfolio/internal/mailer"
	"portfolio/internal/model"
)

const (
	msgContactSent       = "Your message has been sent."
	msgContactNotSetUp   = "The contact form is not available right now."
	contactMetricKind    = "contact"
	contactSubjectPrefix = "New Contact Form Message from "
)

// Contact forwards visitor messages to the owner's inbox.
type Contact struct {
	sender mailer.Sender
	from   string
	to     string
	log    *zap.Logger
}

func NewContact(sender mailer.Sender, from, to string, log *zap.Logger) *Contact {
	if log == nil {
		log = zap.NewNop()
	}
	return &Contact{sender: sender, from: from, to: to, log: log.With(zap.String("kind", contactMetricKind))}
}

// Send validates msg and emails it. Provider failures come back verbatim as send_failed.
func (c *Contact) Send(ctx context.Context, msg model.ContactMessage) Result {
	res := c.send(ctx, msg)
	submissionsTotal.WithLabelValues(contactMetricKind, string(res.Status)).Inc()
	return res
}

func (c *Contact) send(ctx context.Context, msg model.ContactMessage) Result {
	if fe := ContactSchema.Validate(msg); fe != nil {
		return invalid(fe)
	}

	err := c.sender.Send(ctx, mailer.Message{
		From:    c.from,
		To:      c.to,
		Subject: contactSubjectPrefix + msg.Name,
		HTML:    contactHTML(msg),
		ReplyTo: msg.Email,
	})
	if err != nil {
		c.log.Error("send contact email failed", zap.Error(err))
		if errors.Is(err, mailer.ErrNotConfigured) {
			return failed(StatusSendFailed, msgContactNotSetUp)
		}
		var se *mailer.SendError
		if errors.As(err, &se) {
			return failed(StatusSendFailed, se.Message)
		}
		return failed(StatusSendFailed, err.Error())
	}
	return Result{Status: StatusOK, Message: msgContactSent}
}

func contactHTML(msg model.ContactMessage) string {
	body := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")
	return fmt.Sprintf(`<div>
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <p>%s</p>
</div>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), body)
}
