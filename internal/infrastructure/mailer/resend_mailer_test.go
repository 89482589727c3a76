package mailer

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"athlete-intake/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"id": "email_123"})
	}))
	defer srv.Close()

	m := NewResendMailer("re_test", srv.URL)
	id, err := m.Send(context.Background(), Envelope{
		From:    "intake@example.com",
		To:      []string{"coach@example.com"},
		Subject: "New athlete submission",
		HTML:    "<p>hi</p>",
		ReplyTo: "jane@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "email_123", id)
	assert.Equal(t, "intake@example.com", got.From)
	assert.Equal(t, []string{"coach@example.com"}, got.To)
	assert.Equal(t, "jane@example.com", got.ReplyTo)
}

func TestSendProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid from field"})
	}))
	defer srv.Close()

	m := NewResendMailer("re_test", srv.URL)
	_, err := m.Send(context.Background(), Envelope{From: "x", To: []string{"y"}})
	require.Error(t, err)

	var ae *errors.AppError
	require.True(t, stderrors.As(err, &ae))
	assert.Equal(t, 502, ae.Status)
	assert.Contains(t, ae.Message, "invalid from field")
}

func TestSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	m := NewResendMailer("re_test", srv.URL)
	_, err := m.Send(context.Background(), Envelope{From: "x", To: []string{"y"}})
	require.Error(t, err)

	var ae *errors.AppError
	require.True(t, stderrors.As(err, &ae))
	assert.Equal(t, 500, ae.Status)
	assert.Equal(t, "email_transport_error", ae.Code)
}
