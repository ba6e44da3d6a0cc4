// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/tracing"
)

func newTestNotifier(url string) *WebhookNotifier {
	return NewWebhookNotifier(url, "secret", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestWebhookNotifierSendInvite(t *testing.T) {
	var got Invite

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, invitesPath, r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"status":202,"message":"queued"}`))
	}))
	defer srv.Close()

	invite := &Invite{BusinessID: 3, BusinessName: "Acme", Token: "tok", InviterID: 1, InviteeID: 8, InviteeEmail: "dave@example.com", ExpiresAt: time.Now().UTC()}

	require.NoError(t, newTestNotifier(srv.URL).SendInvite(context.Background(), invite))
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, "dave@example.com", got.InviteeEmail)
}

func TestWebhookNotifierClientErrorIsNotRetried(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"message":"bad email"}`))
	}))
	defer srv.Close()

	err := newTestNotifier(srv.URL).SendPasswordReset(context.Background(), &PasswordReset{UserID: 1, Email: "a@example.com", Token: "t"})

	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWebhookNotifierServerErrorIsRetried(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestNotifier(srv.URL).SendPasswordReset(context.Background(), &PasswordReset{UserID: 1, Email: "a@example.com", Token: "t"})

	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
