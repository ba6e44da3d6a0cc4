// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"

	"github.com/canonical/business-service/internal/session"
)

type SessionManagerInterface interface {
	// Load returns the session id and payload of the request, a nil payload when there is none
	Load(ctx context.Context, r *http.Request) (string, session.Payload)
	// Destroy removes the stored session and expires the cookie
	Destroy(ctx context.Context, w http.ResponseWriter, id string) error
}
