// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
)

type GateInterface interface {
	Gate(requireAuth bool) func(http.Handler) http.Handler
}
