// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/session"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func loggedInPayload() session.Payload {
	return session.Payload{
		"user_id":             int64(7),
		"current_business_id": int64(3),
		"business_ids":        []any{int64(3)},
	}
}

func TestGate(t *testing.T) {
	tests := []struct {
		name         string
		requireAuth  bool
		setupMocks   func(*MockSessionManagerInterface)
		wantStatus   int
		wantNext     bool
		wantLocation string
	}{
		{
			name:        "logged in on protected route",
			requireAuth: true,
			setupMocks: func(s *MockSessionManagerInterface) {
				s.EXPECT().Load(gomock.Any(), gomock.Any()).Return("sid-1", loggedInPayload())
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:        "anonymous on public route",
			requireAuth: false,
			setupMocks: func(s *MockSessionManagerInterface) {
				s.EXPECT().Load(gomock.Any(), gomock.Any()).Return("", nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:        "anonymous on protected route",
			requireAuth: true,
			setupMocks: func(s *MockSessionManagerInterface) {
				s.EXPECT().Load(gomock.Any(), gomock.Any()).Return("", nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "malformed session on protected route",
			requireAuth: true,
			setupMocks: func(s *MockSessionManagerInterface) {
				s.EXPECT().Load(gomock.Any(), gomock.Any()).Return("sid-1", session.Payload{"user_id": "7"})
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "logged in on public route is logged out",
			requireAuth: false,
			setupMocks: func(s *MockSessionManagerInterface) {
				s.EXPECT().Load(gomock.Any(), gomock.Any()).Return("sid-1", loggedInPayload())
				s.EXPECT().Destroy(gomock.Any(), gomock.Any(), "sid-1").Return(nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/app",
		},
		{
			name:        "forced logout fails",
			requireAuth: false,
			setupMocks: func(s *MockSessionManagerInterface) {
				s.EXPECT().Load(gomock.Any(), gomock.Any()).Return("sid-1", loggedInPayload())
				s.EXPECT().Destroy(gomock.Any(), gomock.Any(), "sid-1").Return(errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSessions := NewMockSessionManagerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Gate").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			test.setupMocks(mockSessions)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true

				s, ok := GetSession(r.Context())
				if test.requireAuth {
					if !ok || s.UserID != 7 {
						t.Errorf("expected session for user 7 in context, got %v", s)
					}
					if id, _ := GetSessionID(r.Context()); id != "sid-1" {
						t.Errorf("expected session id sid-1, got %q", id)
					}
				} else if ok {
					t.Errorf("expected no session in context")
				}
				w.WriteHeader(http.StatusOK)
			})

			m := NewMiddleware(mockSessions, "/app", mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)
			w := httptest.NewRecorder()
			m.Gate(test.requireAuth)(next).ServeHTTP(w, req)

			if w.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d", test.wantStatus, w.Code)
			}
			if called != test.wantNext {
				t.Errorf("expected next called %v, got %v", test.wantNext, called)
			}
			if test.wantLocation != "" && w.Header().Get("Location") != test.wantLocation {
				t.Errorf("expected redirect to %s, got %s", test.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}
