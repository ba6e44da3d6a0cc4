// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/business-service/internal/authorization"
	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/types"
	"github.com/canonical/business-service/pkg/authentication"
)

type AuthorizationMiddleware struct {
	authorizer authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authorize checks the route's permissions against the session placed in the context by the gate.
// Routes without permissions pass through untouched.
func (m *AuthorizationMiddleware) Authorize(route httptypes.Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(route.Permissions) == 0 {
			return next
		}

		resource := route.Method + " " + route.Pattern

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "web.AuthorizationMiddleware.Authorize")
			defer span.End()

			s, ok := authentication.GetSession(ctx)
			if !ok {
				httptypes.WriteError(w, m.logger, types.ErrNotAuthenticated)
				return
			}

			if route.SelfParam != "" && chi.URLParam(r, route.SelfParam) == strconv.FormatInt(s.UserID, 10) {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			var (
				allowed bool
				err     error
			)

			if route.DepartmentParam != "" {
				departmentID, perr := httptypes.IDParam(r, route.DepartmentParam)
				if perr != nil {
					httptypes.WriteError(w, m.logger, perr)
					return
				}
				allowed, err = m.authorizer.CheckDepartmentPermission(ctx, s.UserID, s.CurrentBusinessID, departmentID, route.Permissions)
			} else {
				allowed, err = m.authorizer.CheckPermission(ctx, s.UserID, s.CurrentBusinessID, route.Permissions)
			}

			if err != nil {
				httptypes.WriteError(w, m.logger, err)
				return
			}

			if !allowed {
				m.logger.Security().AuthzFailure(strconv.FormatInt(s.UserID, 10), resource)
				httptypes.WriteError(w, m.logger, types.ErrPermissions)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewAuthorizationMiddleware(authorizer authorization.AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *AuthorizationMiddleware {
	return &AuthorizationMiddleware{
		authorizer: authorizer,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
