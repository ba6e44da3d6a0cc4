// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package business

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

const registerBody = `{
	"email": "owner@example.com",
	"password": "s3cret-pass",
	"first_name": "Ada",
	"last_name": "Lovelace",
	"business_name": "Acme",
	"address_line_1": "1 Main St",
	"city": "Springfield",
	"postal_code": "12345",
	"country": "US"
}`

func TestAPI_Register(t *testing.T) {
	sess := &session.Session{UserID: 7, CurrentBusinessID: 3, BusinessIDs: []int64{3}}

	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockSessionManagerInterface)
		wantStatus int
	}{
		{
			name: "registers and logs in",
			body: registerBody,
			setupMocks: func(s *MockServiceInterface, m *MockSessionManagerInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, r *Registration) (*session.Session, error) {
						if r.Business.Name != "Acme" || r.Email != "owner@example.com" {
							t.Errorf("unexpected registration %+v", r)
						}
						return sess, nil
					},
				)
				m.EXPECT().Create(gomock.Any(), gomock.Any(), sess).Return("sid-1", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "session failure still reports the registration",
			body: registerBody,
			setupMocks: func(s *MockServiceInterface, m *MockSessionManagerInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(sess, nil)
				m.EXPECT().Create(gomock.Any(), gomock.Any(), sess).Return("", errors.New("redis down"))
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       `{"email":"owner@example.com"}`,
			setupMocks: func(*MockServiceInterface, *MockSessionManagerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: registerBody,
			setupMocks: func(s *MockServiceInterface, _ *MockSessionManagerInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, types.NewParamError("email already registered"))
			},
			wantStatus: http.StatusBadRequest,
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/register", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			api.register(w, req)

			if w.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d: %s", test.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_CurrentBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(&types.Business{ID: 3, Name: "Acme"}, nil)

	api := NewAPI(mockService, NewMockSessionManagerInterface(ctrl), logging.NewNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v0/business", nil)
	req = req.WithContext(authentication.WithSession(req.Context(), "sid-1", &session.Session{UserID: 7, CurrentBusinessID: 3, BusinessIDs: []int64{3}}))
	w := httptest.NewRecorder()
	api.currentBusiness(w, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Acme"`) {
		t.Errorf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
