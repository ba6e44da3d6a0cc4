// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

const (
	userID     int64 = 7
	businessID int64 = 3
)

func adminGrant() *types.RoleGrant {
	return &types.RoleGrant{RoleID: 1, DepartmentID: 10, Access: types.AccessAdmin, Capabilities: types.NewCapabilitySet()}
}

func managerGrant(departmentID int64, caps ...types.Capability) *types.RoleGrant {
	return &types.RoleGrant{RoleID: 2, DepartmentID: departmentID, Access: types.AccessManager, Capabilities: types.NewCapabilitySet(caps...)}
}

func userGrant(departmentID int64, caps ...types.Capability) *types.RoleGrant {
	return &types.RoleGrant{RoleID: 3, DepartmentID: departmentID, Access: types.AccessUser, Capabilities: types.NewCapabilitySet(caps...)}
}

func TestAuthorizer_CheckPermission(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		required    []types.Capability
		setupMocks  func(*MockGrantStoreInterface)
		expected    bool
		expectedErr error
	}{
		{
			name:       "empty set is allowed without touching the store",
			required:   nil,
			setupMocks: func(*MockGrantStoreInterface) {},
			expected:   true,
		},
		{
			name:     "admin role bypasses capabilities",
			required: []types.Capability{types.CapabilityGlobalCRUDUsers, types.CapabilityDeptCRUDRole},
			setupMocks: func(s *MockGrantStoreInterface) {
				s.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).Return([]*types.RoleGrant{adminGrant()}, nil)
			},
			expected: true,
		},
		{
			name:     "no roles denies",
			required: []types.Capability{types.CapabilityGlobalViewReports},
			setupMocks: func(s *MockGrantStoreInterface) {
				s.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).Return(nil, nil)
			},
			expected: false,
		},
		{
			name:     "manager without explicit grant is denied global crud",
			required: []types.Capability{types.CapabilityGlobalCRUDDepartment},
			setupMocks: func(s *MockGrantStoreInterface) {
				s.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).
					Return([]*types.RoleGrant{managerGrant(10, types.CapabilityDeptCRUDRole)}, nil)
			},
			expected: false,
		},
		{
			name:     "manager with explicit grant is allowed",
			required: []types.Capability{types.CapabilityGlobalCRUDDepartment},
			setupMocks: func(s *MockGrantStoreInterface) {
				s.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).
					Return([]*types.RoleGrant{managerGrant(10, types.CapabilityGlobalCRUDDepartment)}, nil)
			},
			expected: true,
		},
		{
			name:     "capabilities can be spread over roles",
			required: []types.Capability{types.CapabilityGlobalViewReports, types.CapabilityDeptViewReports},
			setupMocks: func(s *MockGrantStoreInterface) {
				s.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).
					Return([]*types.RoleGrant{
						userGrant(10, types.CapabilityGlobalViewReports),
						managerGrant(11, types.CapabilityDeptViewReports),
					}, nil)
			},
			expected: true,
		},
		{
			name:     "every capability must be satisfied",
			required: []types.Capability{types.CapabilityGlobalViewReports, types.CapabilityGlobalCRUDUsers},
			setupMocks: func(s *MockGrantStoreInterface) {
				s.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).
					Return([]*types.RoleGrant{userGrant(10, types.CapabilityGlobalViewReports)}, nil)
			},
			expected: false,
		},
		{
			name:     "store error",
			required: []types.Capability{types.CapabilityGlobalViewReports},
			setupMocks: func(s *MockGrantStoreInterface) {
				s.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockGrantStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			a := NewAuthorizer(mockStore, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckPermission").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStore)

			allowed, err := a.CheckPermission(context.Background(), userID, businessID, tc.required)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if allowed != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, allowed)
			}
		})
	}
}

func TestAuthorizer_CheckDepartmentPermission(t *testing.T) {
	grants := []*types.RoleGrant{
		managerGrant(10, types.CapabilityDeptCRUDRole, types.CapabilityGlobalViewReports),
	}

	testCases := []struct {
		name         string
		departmentID int64
		required     []types.Capability
		expected     bool
	}{
		{name: "department capability in the same department", departmentID: 10, required: []types.Capability{types.CapabilityDeptCRUDRole}, expected: true},
		{name: "department capability in another department", departmentID: 11, required: []types.Capability{types.CapabilityDeptCRUDRole}, expected: false},
		{name: "global capability ignores department context", departmentID: 11, required: []types.Capability{types.CapabilityGlobalViewReports}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockGrantStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			a := NewAuthorizer(mockStore, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckDepartmentPermission").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStore.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).Return(grants, nil)

			allowed, err := a.CheckDepartmentPermission(context.Background(), userID, businessID, tc.departmentID, tc.required)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if allowed != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, allowed)
			}
		})
	}
}

func TestAuthorizer_IsAdminIsManager(t *testing.T) {
	testCases := []struct {
		name            string
		grants          []*types.RoleGrant
		expectedAdmin   bool
		expectedManager bool
	}{
		{name: "no roles", grants: nil},
		{name: "admin", grants: []*types.RoleGrant{adminGrant()}, expectedAdmin: true},
		{name: "manager only", grants: []*types.RoleGrant{managerGrant(10)}, expectedManager: true},
		{name: "user only", grants: []*types.RoleGrant{userGrant(10, types.CapabilityGlobalCRUDUsers)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockGrantStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			a := NewAuthorizer(mockStore, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.IsAdmin").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.IsManager").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStore.EXPECT().ListUserRoleGrants(gomock.Any(), userID, businessID).Return(tc.grants, nil).Times(2)

			isAdmin, err := a.IsAdmin(context.Background(), businessID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			isManager, err := a.IsManager(context.Background(), businessID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if isAdmin != tc.expectedAdmin {
				t.Errorf("expected admin %v, got %v", tc.expectedAdmin, isAdmin)
			}

			if isManager != tc.expectedManager {
				t.Errorf("expected manager %v, got %v", tc.expectedManager, isManager)
			}
		})
	}
}

func TestResolveWithoutDepartmentContextIsBusinessWide(t *testing.T) {
	grants := []*types.RoleGrant{userGrant(42, types.CapabilityDeptViewReports)}

	if !resolve(grants, []types.Capability{types.CapabilityDeptViewReports}, noDepartment) {
		t.Error("expected department capability to be honoured business wide without context")
	}

	if resolve(grants, []types.Capability{types.Capability("dept_unknown")}, noDepartment) {
		t.Error("expected unknown capability to be denied")
	}
}
