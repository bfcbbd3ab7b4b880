package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResend_RequiresKey(t *testing.T) {
	_, err := NewResend("", "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, Unconfigured{}.Send(context.Background(), Message{}), ErrNotConfigured)
}

func TestResendSender_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer srv.Close()

	s, err := NewResend("re_test", srv.URL+"/")
	require.NoError(t, err)

	err = s.Send(context.Background(), Message{
		From:    "Portfolio <noreply@example.com>",
		To:      "owner@example.com",
		Subject: "New Contact Form Message from Jane",
		HTML:    "<p>hi</p>",
		ReplyTo: "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Portfolio <noreply@example.com>", got["from"])
	assert.Equal(t, []any{"owner@example.com"}, got["to"])
	assert.Equal(t, "<p>hi</p>", got["html"])
}

func TestResendSender_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"The from address is not verified."}`))
	}))
	defer srv.Close()

	s, err := NewResend("re_test", srv.URL+"/")
	require.NoError(t, err)

	err = s.Send(context.Background(), Message{From: "a@b.c", To: "owner@example.com", Subject: "s", HTML: "h"})

	var se *SendError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "The from address is not verified.", se.Message)
	assert.Zero(t, se.Status)
}

func TestResendSender_ProviderErrorWithoutJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s, err := NewResend("re_test", srv.URL+"/")
	require.NoError(t, err)

	err = s.Send(context.Background(), Message{From: "a@b.c", To: "owner@example.com", Subject: "s", HTML: "h"})

	assert.EqualError(t, err, "send email failed: 502 Bad Gateway")
}

func TestResendSender_MissingRecipient(t *testing.T) {
	s, err := NewResend("re_test", "")
	require.NoError(t, err)

	err = s.Send(context.Background(), Message{From: "a@b.c"})

	assert.EqualError(t, err, "send email failed: recipient is not configured")
}
