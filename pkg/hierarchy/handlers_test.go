// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/types"
	"github.com/canonical/business-service/pkg/authentication"
)

func newTestMux(api *API) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := &session.Session{UserID: 7, CurrentBusinessID: 3, BusinessIDs: []int64{3}}
			next.ServeHTTP(w, r.WithContext(authentication.WithSession(r.Context(), "sid-1", s)))
		})
	})

	for _, route := range api.Routes() {
		mux.Method(route.Method, route.Pattern, route.Handler)
	}

	return mux
}

func TestAPI_Handlers(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list departments",
			method: http.MethodGet,
			path:   "/api/v0/departments",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListDepartments(gomock.Any(), int64(3)).Return([]*types.Department{{ID: 1, Name: "Admin"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Admin"`,
		},
		{
			name:   "create department",
			method: http.MethodPost,
			path:   "/api/v0/departments",
			body:   `{"name":"Sales"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateDepartment(gomock.Any(), int64(3), int64(7), "Sales").Return(&types.Department{ID: 2, Name: "Sales"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "create department without name",
			method:     http.MethodPost,
			path:       "/api/v0/departments",
			body:       `{}`,
			setupMocks: func(*MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "delete locked department",
			method: http.MethodDelete,
			path:   "/api/v0/departments/1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteDepartment(gomock.Any(), int64(3), int64(1)).Return(types.ErrLocked)
			},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "delete role with dependents",
			method: http.MethodDelete,
			path:   "/api/v0/departments/1/roles/10",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteRole(gomock.Any(), int64(3), int64(1), int64(10)).Return(types.ErrDependentsExist)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "reassign them first",
		},
		{
			name:   "create role",
			method: http.MethodPost,
			path:   "/api/v0/departments/1/roles",
			body:   `{"name":"Staff","access":"USER","capabilities":["dept_view_reports"]}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateRole(gomock.Any(), int64(3), int64(7), int64(1), &RoleSpec{
					Name:         "Staff",
					Access:       types.AccessUser,
					Capabilities: []types.Capability{types.CapabilityDeptViewReports},
				}).Return(&types.Role{ID: 10}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "create role with unknown capability",
			method:     http.MethodPost,
			path:       "/api/v0/departments/1/roles",
			body:       `{"name":"Staff","access":"USER","capabilities":["fly"]}`,
			setupMocks: func(*MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "create role with invalid access",
			method:     http.MethodPost,
			path:       "/api/v0/departments/1/roles",
			body:       `{"name":"Staff","access":"OWNER"}`,
			setupMocks: func(*MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "update role keeps capabilities when omitted",
			method: http.MethodPatch,
			path:   "/api/v0/departments/1/roles/10",
			body:   `{"name":"Lead"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateRole(gomock.Any(), int64(3), int64(7), int64(1), int64(10), gomock.Any()).DoAndReturn(
					func(_, _, _, _, _ any, u *RoleUpdate) (*types.Role, error) {
						if u.Capabilities != nil || u.Access != nil || u.Name == nil || *u.Name != "Lead" {
							t.Errorf("unexpected update %+v", u)
						}
						return &types.Role{ID: 10, Name: "Lead"}, nil
					},
				)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "assign user",
			method: http.MethodPost,
			path:   "/api/v0/departments/1/roles/10/users",
			body:   `{"user_id":8}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().AssignUser(gomock.Any(), int64(3), int64(7), int64(1), int64(10), int64(8), false).Return(&types.UserRole{ID: 1}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "unassign user",
			method: http.MethodDelete,
			path:   "/api/v0/departments/1/roles/10/users/8",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UnassignUser(gomock.Any(), int64(3), int64(1), int64(10), int64(8)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "malformed role id",
			method:     http.MethodDelete,
			path:       "/api/v0/departments/1/roles/x",
			setupMocks: func(*MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			mux := newTestMux(NewAPI(mockService, logging.NewNoopLogger()))

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d: %s", test.wantStatus, w.Code, w.Body.String())
			}
			if test.wantBody != "" && !strings.Contains(w.Body.String(), test.wantBody) {
				t.Errorf("expected body to contain %q, got %s", test.wantBody, w.Body.String())
			}
		})
	}
}
