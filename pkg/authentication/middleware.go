// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strconv"

	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/types"
)

type Middleware struct {
	sessions  SessionManagerInterface
	clientURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Gate admits logged-in sessions on routes requiring authentication and anonymous callers
// on the others. A logged-in caller reaching an anonymous route is logged out and sent
// back to the client, an anonymous caller reaching a protected route gets a 401.
func (m *Middleware) Gate(requireAuth bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Gate")
			defer span.End()

			id, payload := m.sessions.Load(ctx, r)
			s, loggedIn := session.Parse(payload)

			switch {
			case loggedIn && requireAuth:
				next.ServeHTTP(w, r.WithContext(WithSession(ctx, id, s)))
			case !loggedIn && !requireAuth:
				next.ServeHTTP(w, r.WithContext(ctx))
			case loggedIn && !requireAuth:
				m.forceLogout(w, r.WithContext(ctx), id, s)
			default:
				httptypes.WriteError(w, m.logger, types.ErrNotAuthenticated)
			}
		})
	}
}

func (m *Middleware) forceLogout(w http.ResponseWriter, r *http.Request, id string, s *session.Session) {
	if err := m.sessions.Destroy(r.Context(), w, id); err != nil {
		m.logger.Errorf("failed to destroy session on forced logout: %v", err)
		httptypes.WriteMessage(w, http.StatusInternalServerError, httptypes.MessageInternal)
		return
	}

	m.logger.Security().SessionDestroyed(strconv.FormatInt(s.UserID, 10))
	http.Redirect(w, r, m.clientURL, http.StatusSeeOther)
}

func NewMiddleware(sessions SessionManagerInterface, clientURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		sessions:  sessions,
		clientURL: clientURL,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
