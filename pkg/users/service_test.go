// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

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

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

func TestService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "users.Service.GetUser").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	mockStorage.EXPECT().GetMemberUser(gomock.Any(), int64(3), int64(8)).Return(&types.User{ID: 8}, nil)
	mockStorage.EXPECT().GetMemberUser(gomock.Any(), int64(3), int64(9)).Return(nil, storage.ErrNotFound)

	s := NewService(mockStorage, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	if u, err := s.GetUser(context.Background(), 3, 8); err != nil || u.ID != 8 {
		t.Errorf("expected user 8, got %v, %v", u, err)
	}

	if _, err := s.GetUser(context.Background(), 3, 9); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected not found for a non member, got %v", err)
	}
}

func TestService_UpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		update     *Update
		setupMocks func(*MockStorageInterface)
		wantErr    error
		wantPhone  string
	}{
		{
			name:   "partial update",
			update: &Update{Phone: strPtr("555-0100")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMemberUser(gomock.Any(), int64(3), int64(8)).Return(&types.User{ID: 8, FirstName: "Ada", Phone: "old"}, nil)
				s.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), []string{"phone"}).Return(nil)
			},
			wantPhone: "555-0100",
		},
		{
			name:   "empty update writes nothing",
			update: &Update{},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMemberUser(gomock.Any(), int64(3), int64(8)).Return(&types.User{ID: 8, Phone: "old"}, nil)
			},
			wantPhone: "old",
		},
		{
			name:   "not a member",
			update: &Update{FirstName: strPtr("Bob")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMemberUser(gomock.Any(), int64(3), int64(8)).Return(nil, storage.ErrNotFound)
			},
			wantErr: types.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "users.Service.UpdateUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
			)
			test.setupMocks(mockStorage)

			s := NewService(mockStorage, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			u, err := s.UpdateUser(context.Background(), 3, 8, test.update)

			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
			if err == nil && u.Phone != test.wantPhone {
				t.Errorf("expected phone %q, got %q", test.wantPhone, u.Phone)
			}
		})
	}
}
