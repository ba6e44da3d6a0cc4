// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/storage"
	"github.com/canonical/business-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package business -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package business -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var (
	_ StorageInterface = (*storage.Storage)(nil)
	_ StorageInterface = (*MockStorageInterface)(nil)
)

func registration() *Registration {
	return &Registration{
		Email:     "owner@example.com",
		Password:  "s3cret-pass",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Business:  types.Business{Name: "Acme", AddressLine1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
	}
}

// expectHierarchy sets up the rows created for every successful registration
func expectHierarchy(s *MockStorageInterface, userID int64, existingMemberships int) {
	s.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *types.Business) (*types.Business, error) {
			created := *b
			created.ID = 3
			return &created, nil
		},
	)
	s.EXPECT().CreateDepartment(gomock.Any(), &types.Department{
		BusinessID: 3, Name: "Admin", PreventEdit: true, PreventDelete: true, UpdatedByUserID: userID,
	}).Return(&types.Department{ID: 1, BusinessID: 3}, nil)
	s.EXPECT().CreatePermission(gomock.Any(), types.AllCapabilities()).Return(int64(20), nil)
	s.EXPECT().CountMemberships(gomock.Any(), userID).Return(existingMemberships, nil)
	s.EXPECT().CreateMembership(gomock.Any(), &types.Membership{
		UserID: userID, BusinessID: 3, IsDefault: existingMemberships == 0, PreventDelete: true,
	}).Return(&types.Membership{ID: 5}, nil)
	s.EXPECT().CreateRole(gomock.Any(), &types.Role{
		DepartmentID: 1, Name: "General", Access: types.AccessAdmin, PermissionID: 20, PreventEdit: true, PreventDelete: true, UpdatedByUserID: userID,
	}).Return(&types.Role{ID: 10}, nil)
	s.EXPECT().CreateUserRole(gomock.Any(), &types.UserRole{
		UserID: userID, RoleID: 10, PrimaryRoleForUser: true, UpdatedByUserID: userID,
	}).Return(&types.UserRole{ID: 1}, nil)

	memberships := []*types.Membership{{BusinessID: 3}}
	if existingMemberships > 0 {
		memberships = append([]*types.Membership{{BusinessID: 2, IsDefault: true}}, memberships...)
	}
	s.EXPECT().ListMemberships(gomock.Any(), userID).Return(memberships, nil)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name            string
		setupMocks      func(*MockStorageInterface)
		wantBusinessIDs []int64
		wantErr         error
	}{
		{
			name: "new user",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LockUserByEmail(gomock.Any(), "owner@example.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateUser(gomock.Any(), &types.User{
					Email: "owner@example.com", PasswordHash: "hashed", FirstName: "Ada", LastName: "Lovelace",
				}).Return(&types.User{ID: 7}, nil)
				expectHierarchy(s, 7, 0)
			},
			wantBusinessIDs: []int64{3},
		},
		{
			name: "invited user completes registration",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LockUserByEmail(gomock.Any(), "owner@example.com").Return(&types.User{ID: 7, Email: "owner@example.com"}, nil)
				s.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), []string{"first_name", "last_name", "phone"}).Return(nil)
				s.EXPECT().SetUserPassword(gomock.Any(), int64(7), "hashed").Return(nil)
				expectHierarchy(s, 7, 1)
			},
			wantBusinessIDs: []int64{2, 3},
		},
		{
			name: "registered email",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LockUserByEmail(gomock.Any(), "owner@example.com").Return(&types.User{ID: 7, PasswordHash: "x"}, nil)
			},
			wantErr: types.ErrParameters,
		},
		{
			name: "business name taken",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LockUserByEmail(gomock.Any(), "owner@example.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&types.User{ID: 7}, nil)
				s.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			wantErr: types.ErrParameters,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "business.Service.Register").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockHasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
			mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
			)
			test.setupMocks(mockStorage)

			s := NewService(mockStorage, mockHasher, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			sess, err := s.Register(context.Background(), registration())

			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
			if err != nil {
				return
			}

			if sess.UserID != 7 || sess.CurrentBusinessID != 3 {
				t.Errorf("unexpected session %+v", sess)
			}
			if len(sess.BusinessIDs) != len(test.wantBusinessIDs) {
				t.Fatalf("expected business ids %v, got %v", test.wantBusinessIDs, sess.BusinessIDs)
			}
			for i, id := range test.wantBusinessIDs {
				if sess.BusinessIDs[i] != id {
					t.Errorf("expected business ids %v, got %v", test.wantBusinessIDs, sess.BusinessIDs)
				}
			}
		})
	}
}
