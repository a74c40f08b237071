package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavola/internal/config"
)

func TestHTTPMailer_Send(t *testing.T) {
	var received map[string]string
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	mailer := NewHTTPMailer(config.MailConfig{
		Endpoint: srv.URL,
		APIKey:   "key-123",
		From:     "orders@tavola.example.com",
	})

	err := mailer.Send(context.Background(), Message{
		To:      "ada@example.com",
		Subject: "Your order is confirmed",
		Body:    "Hi Ada",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer key-123", authHeader)
	assert.Equal(t, "orders@tavola.example.com", received["from"])
	assert.Equal(t, "ada@example.com", received["to"])
	assert.Equal(t, "Your order is confirmed", received["subject"])
}

func TestHTTPMailer_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	mailer := NewHTTPMailer(config.MailConfig{Endpoint: srv.URL})

	err := mailer.Send(context.Background(), Message{To: "x@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
