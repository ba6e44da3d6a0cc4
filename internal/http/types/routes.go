// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"

	"github.com/canonical/business-service/internal/types"
)

// Route declares an endpoint together with its access requirements
type Route struct {
	Method  string
	Pattern string

	// RequireAuth true admits logged-in sessions only, false admits anonymous callers only
	RequireAuth bool
	// Permissions must all be held in the current business, empty means no check
	Permissions []types.Capability
	// SelfParam names a URL param that skips the permission check when it equals the caller's user id
	SelfParam string
	// DepartmentParam names a URL param used as department context for department capabilities
	DepartmentParam string

	Handler http.HandlerFunc
}

// RouterInterface is implemented by every API exposing routes
type RouterInterface interface {
	Routes() []Route
}
