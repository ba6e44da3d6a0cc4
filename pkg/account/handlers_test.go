// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/types"
	"github.com/canonical/business-service/pkg/authentication"
)

func TestAPI_Handlers(t *testing.T) {
	current := &session.Session{UserID: 7, CurrentBusinessID: 3, BusinessIDs: []int64{3, 4}}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		loggedIn   bool
		setupMocks func(*MockServiceInterface, *MockSessionManagerInterface)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "login opens a session",
			method: http.MethodPost,
			path:   "/api/v0/login",
			body:   `{"email":"a@example.com","password":"s3cret-pass"}`,
			setupMocks: func(s *MockServiceInterface, m *MockSessionManagerInterface) {
				s.EXPECT().Login(gomock.Any(), "a@example.com", "s3cret-pass").Return(current, nil)
				m.EXPECT().Create(gomock.Any(), gomock.Any(), current).Return("sid-2", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "login with bad credentials",
			method: http.MethodPost,
			path:   "/api/v0/login",
			body:   `{"email":"a@example.com","password":"wrong"}`,
			setupMocks: func(s *MockServiceInterface, _ *MockSessionManagerInterface) {
				s.EXPECT().Login(gomock.Any(), "a@example.com", "wrong").Return(nil, types.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid email or password",
		},
		{
			name:   "session store failure on login",
			method: http.MethodPost,
			path:   "/api/v0/login",
			body:   `{"email":"a@example.com","password":"s3cret-pass"}`,
			setupMocks: func(s *MockServiceInterface, m *MockSessionManagerInterface) {
				s.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)
				m.EXPECT().Create(gomock.Any(), gomock.Any(), current).Return("", errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:     "logout",
			method:   http.MethodPost,
			path:     "/api/v0/logout",
			loggedIn: true,
			setupMocks: func(_ *MockServiceInterface, m *MockSessionManagerInterface) {
				m.EXPECT().Destroy(gomock.Any(), gomock.Any(), "sid-1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:     "me",
			method:   http.MethodGet,
			path:     "/api/v0/me",
			loggedIn: true,
			setupMocks: func(s *MockServiceInterface, _ *MockSessionManagerInterface) {
				s.EXPECT().Me(gomock.Any(), current).Return(&Profile{User: &types.User{ID: 7}, IsManager: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_manager":true`,
		},
		{
			name:     "switch business",
			method:   http.MethodPut,
			path:     "/api/v0/me/business",
			body:     `{"business_id":4}`,
			loggedIn: true,
			setupMocks: func(s *MockServiceInterface, m *MockSessionManagerInterface) {
				switched := &session.Session{UserID: 7, CurrentBusinessID: 4, BusinessIDs: []int64{3, 4}}
				s.EXPECT().SwitchBusiness(gomock.Any(), current, int64(4)).Return(switched, nil)
				m.EXPECT().Update(gomock.Any(), "sid-1", switched).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "reset password with invalid token",
			method: http.MethodPost,
			path:   "/api/v0/password/reset",
			body:   `{"token":"tok","password":"new-password"}`,
			setupMocks: func(s *MockServiceInterface, _ *MockSessionManagerInterface) {
				s.EXPECT().ResetPassword(gomock.Any(), "tok", "new-password").Return(types.ErrResetTokenInvalid)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "reset password too short",
			method:     http.MethodPost,
			path:       "/api/v0/password/reset",
			body:       `{"token":"tok","password":"short"}`,
			setupMocks: func(*MockServiceInterface, *MockSessionManagerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "forgot password",
			method: http.MethodPost,
			path:   "/api/v0/password/forgot",
			body:   `{"email":"a@example.com"}`,
			setupMocks: func(s *MockServiceInterface, _ *MockSessionManagerInterface) {
				s.EXPECT().ForgotPassword(gomock.Any(), "a@example.com").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockSessions := NewMockSessionManagerInterface(ctrl)
			test.setupMocks(mockService, mockSessions)

			api := NewAPI(mockService, mockSessions, logging.NewNoopLogger())

			var handler http.HandlerFunc
			for _, route := range api.Routes() {
				if route.Method == test.method && route.Pattern == test.path {
					handler = route.Handler
				}
			}
			if handler == nil {
				t.Fatalf("no route for %s %s", test.method, test.path)
			}

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			if test.loggedIn {
				req = req.WithContext(authentication.WithSession(req.Context(), "sid-1", current))
			}

			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d: %s", test.wantStatus, w.Code, w.Body.String())
			}
			if test.wantBody != "" && !strings.Contains(w.Body.String(), test.wantBody) {
				t.Errorf("expected body to contain %q, got %s", test.wantBody, w.Body.String())
			}
		})
	}
}
