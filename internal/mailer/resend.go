package mailer

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ResendSender delivers mail through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
}

var _ Sender = (*ResendSender)(nil)

// NewResend creates a sender for apiKey. baseURL overrides the API endpoint when non-empty.
func NewResend(apiKey, baseURL string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	hc := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	cli := resend.NewCustomClient(hc, apiKey)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, err
		}
		cli.BaseURL = u
	}
	return &ResendSender{client: cli}, nil
}

// Send issues a single request; it is not retried.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return &SendError{Message: "recipient is not configured"}
	}
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return &SendError{Message: providerMessage(err)}
	}
	return nil
}

// providerMessage strips the client's "[ERROR]: " prefix from a provider failure.
func providerMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "[ERROR]: ")
}
