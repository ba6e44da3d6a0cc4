// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/business-service/internal/session"
)

// Define a private custom type to avoid collisions
type contextKey int

const (
	sessionContextKey contextKey = iota
	sessionIDContextKey
)

// WithSession returns a new context carrying the validated session and its store id
func WithSession(ctx context.Context, id string, s *session.Session) context.Context {
	ctx = context.WithValue(ctx, sessionContextKey, s)
	return context.WithValue(ctx, sessionIDContextKey, id)
}

// GetSession retrieves the session placed by the Gate.
// Returns nil and false on routes that do not require authentication.
func GetSession(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*session.Session)
	return s, ok && s != nil
}

func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDContextKey).(string)
	return id, ok
}
