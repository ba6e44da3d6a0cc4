// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/notifier"
	"github.com/canonical/business-service/internal/storage"
	"github.com/canonical/business-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var (
	_ StorageInterface = (*storage.Storage)(nil)
	_ StorageInterface = (*MockStorageInterface)(nil)
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func runTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestService(ctrl *gomock.Controller, mockStorage *MockStorageInterface, mockNotifier *MockNotifierInterface, span string) *Service {
	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), span).Return(context.Background(), trace.SpanFromContext(context.Background()))

	s := NewService(mockStorage, mockNotifier, 72*time.Hour, time.Hour, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	s.now = func() time.Time { return fixedNow }

	return s
}

func TestService_SendInvite(t *testing.T) {
	business := &types.Business{ID: 3, Name: "Acme"}

	tests := []struct {
		name       string
		email      string
		setupMocks func(*MockStorageInterface, *MockNotifierInterface)
		check      func(*testing.T, *types.MembershipRequest)
		wantErr    error
	}{
		{
			name:  "new email creates a passwordless user and a request",
			email: " New@Example.com ",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(business, nil)
				s.EXPECT().LockUserByEmail(gomock.Any(), "new@example.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateInvitedUser(gomock.Any(), "new@example.com").Return(&types.User{ID: 9, Email: "new@example.com"}, nil)
				s.EXPECT().GetMembership(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().LockMembershipRequest(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateMembershipRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.MembershipRequest) (*types.MembershipRequest, error) {
						created := *r
						created.ID = 4
						return &created, nil
					},
				)
				n.EXPECT().SendInvite(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, i *notifier.Invite) error {
						if i.InviteeEmail != "new@example.com" || i.BusinessName != "Acme" || i.InviterID != 7 {
							t.Errorf("unexpected invite notification %+v", i)
						}
						return nil
					},
				)
			},
			check: func(t *testing.T, r *types.MembershipRequest) {
				if r.ID != 4 || r.UserID != 9 || r.BusinessID != 3 || r.UpdatedByUserID != 7 {
					t.Errorf("unexpected request %+v", r)
				}
				if r.Token == "" {
					t.Errorf("expected a token")
				}
				if !r.TokenExpiry.Equal(fixedNow.Add(72 * time.Hour)) {
					t.Errorf("expected expiry %v, got %v", fixedNow.Add(72*time.Hour), r.TokenExpiry)
				}
			},
		},
		{
			name:  "user created by a concurrent invite is reused",
			email: "new@example.com",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(business, nil)
				gomock.InOrder(
					s.EXPECT().LockUserByEmail(gomock.Any(), "new@example.com").Return(nil, storage.ErrNotFound),
					s.EXPECT().CreateInvitedUser(gomock.Any(), "new@example.com").Return(nil, storage.ErrDuplicateKey),
					s.EXPECT().LockUserByEmail(gomock.Any(), "new@example.com").Return(&types.User{ID: 9, Email: "new@example.com"}, nil),
				)
				s.EXPECT().GetMembership(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().LockMembershipRequest(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateMembershipRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.MembershipRequest) (*types.MembershipRequest, error) {
						created := *r
						created.ID = 4
						return &created, nil
					},
				)
				n.EXPECT().SendInvite(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, r *types.MembershipRequest) {
				if r.ID != 4 || r.UserID != 9 {
					t.Errorf("unexpected request %+v", r)
				}
			},
		},
		{
			name:  "pending request is reissued in place",
			email: "known@example.com",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(business, nil)
				s.EXPECT().LockUserByEmail(gomock.Any(), "known@example.com").Return(&types.User{ID: 9, Email: "known@example.com"}, nil)
				s.EXPECT().GetMembership(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().LockMembershipRequest(gomock.Any(), int64(9), int64(3)).Return(
					&types.MembershipRequest{ID: 4, UserID: 9, BusinessID: 3, Token: "old", TokenExpiry: fixedNow.Add(-time.Hour)}, nil,
				)
				s.EXPECT().RefreshMembershipRequest(gomock.Any(), int64(4), gomock.Not("old"), fixedNow.Add(72*time.Hour), int64(7)).Return(nil)
				n.EXPECT().SendInvite(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, r *types.MembershipRequest) {
				if r.ID != 4 {
					t.Errorf("expected request 4 to be reused, got %d", r.ID)
				}
				if r.Token == "old" || r.Token == "" {
					t.Errorf("expected a new token, got %q", r.Token)
				}
				if r.Email != "known@example.com" {
					t.Errorf("expected email on request, got %q", r.Email)
				}
			},
		},
		{
			name:  "existing member is rejected",
			email: "member@example.com",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(business, nil)
				s.EXPECT().LockUserByEmail(gomock.Any(), "member@example.com").Return(&types.User{ID: 9}, nil)
				s.EXPECT().GetMembership(gomock.Any(), int64(9), int64(3)).Return(&types.Membership{ID: 1}, nil)
			},
			wantErr: types.ErrAlreadyMember,
		},
		{
			name:  "notification failure does not fail the invite",
			email: "known@example.com",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(business, nil)
				s.EXPECT().LockUserByEmail(gomock.Any(), gomock.Any()).Return(&types.User{ID: 9}, nil)
				s.EXPECT().GetMembership(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().LockMembershipRequest(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateMembershipRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.MembershipRequest) (*types.MembershipRequest, error) {
						return r, nil
					},
				)
				n.EXPECT().SendInvite(gomock.Any(), gomock.Any()).Return(errors.New("webhook down"))
			},
			check: func(t *testing.T, r *types.MembershipRequest) {
				if r == nil {
					t.Errorf("expected request")
				}
			},
		},
		{
			name:  "storage failure",
			email: "known@example.com",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(nil, errors.New("connection reset"))
			},
			wantErr: errors.New("any"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockNotifier := NewMockNotifierInterface(ctrl)
			test.setupMocks(mockStorage, mockNotifier)

			s := newTestService(ctrl, mockStorage, mockNotifier, "membership.Service.SendInvite")

			r, err := s.SendInvite(context.Background(), 3, 7, test.email)

			if test.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if errors.Is(test.wantErr, types.ErrAlreadyMember) && !errors.Is(err, types.ErrAlreadyMember) {
					t.Errorf("expected ErrAlreadyMember, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			test.check(t, r)
		})
	}
}

func TestService_SendInviteTwiceRotatesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockNotifier := NewMockNotifierInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), "membership.Service.SendInvite").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)

	s := NewService(mockStorage, mockNotifier, time.Hour, time.Hour, mockTracer, monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	var stored *types.MembershipRequest

	mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).Times(2)
	mockStorage.EXPECT().GetBusiness(gomock.Any(), int64(3)).Return(&types.Business{ID: 3}, nil).Times(2)
	mockStorage.EXPECT().LockUserByEmail(gomock.Any(), gomock.Any()).Return(&types.User{ID: 9}, nil).Times(2)
	mockStorage.EXPECT().GetMembership(gomock.Any(), int64(9), int64(3)).Return(nil, storage.ErrNotFound).Times(2)
	mockStorage.EXPECT().LockMembershipRequest(gomock.Any(), int64(9), int64(3)).DoAndReturn(
		func(context.Context, int64, int64) (*types.MembershipRequest, error) {
			if stored == nil {
				return nil, storage.ErrNotFound
			}
			copied := *stored
			return &copied, nil
		},
	).Times(2)
	mockStorage.EXPECT().CreateMembershipRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.MembershipRequest) (*types.MembershipRequest, error) {
			created := *r
			created.ID = 4
			stored = &created
			returned := created
			return &returned, nil
		},
	).Times(1)
	mockStorage.EXPECT().RefreshMembershipRequest(gomock.Any(), int64(4), gomock.Any(), gomock.Any(), int64(7)).DoAndReturn(
		func(_ context.Context, _ int64, tok string, expiry time.Time, _ int64) error {
			stored.Token = tok
			stored.TokenExpiry = expiry
			return nil
		},
	).Times(1)
	mockNotifier.EXPECT().SendInvite(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := s.SendInvite(context.Background(), 3, 7, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstToken := first.Token

	second, err := s.SendInvite(context.Background(), 3, 7, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected a single request, got %d and %d", first.ID, second.ID)
	}
	if firstToken == "" || firstToken == second.Token {
		t.Errorf("expected the token to change on resend, got %q twice", firstToken)
	}
	if stored.Token != second.Token {
		t.Errorf("expected stored token to be the latest one")
	}
}

func TestService_AcceptInvite(t *testing.T) {
	pending := func() *types.MembershipRequest {
		return &types.MembershipRequest{ID: 4, UserID: 9, BusinessID: 3, Token: "tok", TokenExpiry: fixedNow.Add(time.Hour)}
	}

	tests := []struct {
		name        string
		token       string
		setupMocks  func(*MockStorageInterface, *MockNotifierInterface)
		wantDefault bool
		wantErr     error
	}{
		{
			name:  "first membership becomes default",
			token: "tok",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().LockMembershipRequestByToken(gomock.Any(), "tok").Return(pending(), nil)
				s.EXPECT().LockUser(gomock.Any(), int64(9)).Return(&types.User{ID: 9, PasswordHash: "hash"}, nil)
				s.EXPECT().CountMemberships(gomock.Any(), int64(9)).Return(0, nil)
				s.EXPECT().CreateMembership(gomock.Any(), &types.Membership{UserID: 9, BusinessID: 3, IsDefault: true}).Return(
					&types.Membership{ID: 1, UserID: 9, BusinessID: 3, IsDefault: true}, nil,
				)
				s.EXPECT().DeleteMembershipRequest(gomock.Any(), int64(4)).Return(nil)
			},
			wantDefault: true,
		},
		{
			name:  "further membership is not default",
			token: "tok",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().LockMembershipRequestByToken(gomock.Any(), "tok").Return(pending(), nil)
				s.EXPECT().LockUser(gomock.Any(), int64(9)).Return(&types.User{ID: 9, PasswordHash: "hash"}, nil)
				s.EXPECT().CountMemberships(gomock.Any(), int64(9)).Return(2, nil)
				s.EXPECT().CreateMembership(gomock.Any(), &types.Membership{UserID: 9, BusinessID: 3}).Return(
					&types.Membership{ID: 1, UserID: 9, BusinessID: 3}, nil,
				)
				s.EXPECT().DeleteMembershipRequest(gomock.Any(), int64(4)).Return(nil)
			},
		},
		{
			name:  "passwordless user gets a reset token",
			token: "tok",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().LockMembershipRequestByToken(gomock.Any(), "tok").Return(pending(), nil)
				s.EXPECT().LockUser(gomock.Any(), int64(9)).Return(&types.User{ID: 9, Email: "new@example.com"}, nil)
				s.EXPECT().CountMemberships(gomock.Any(), int64(9)).Return(0, nil)
				s.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(&types.Membership{ID: 1, UserID: 9, BusinessID: 3, IsDefault: true}, nil)
				s.EXPECT().DeleteMembershipRequest(gomock.Any(), int64(4)).Return(nil)
				s.EXPECT().SetUserToken(gomock.Any(), int64(9), gomock.Any(), fixedNow.Add(time.Hour)).Return(nil)
				n.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *notifier.PasswordReset) error {
						if r.Email != "new@example.com" || r.Token == "" {
							t.Errorf("unexpected reset notification %+v", r)
						}
						return errors.New("webhook down")
					},
				)
			},
			wantDefault: true,
		},
		{
			name:  "expired token",
			token: "tok",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				expired := pending()
				expired.TokenExpiry = fixedNow

				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().LockMembershipRequestByToken(gomock.Any(), "tok").Return(expired, nil)
			},
			wantErr: types.ErrTokenInvalidOrExpired,
		},
		{
			name:  "unknown token",
			token: "nope",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().LockMembershipRequestByToken(gomock.Any(), "nope").Return(nil, storage.ErrNotFound)
			},
			wantErr: types.ErrTokenInvalidOrExpired,
		},
		{
			name:       "empty token",
			token:      "",
			setupMocks: func(*MockStorageInterface, *MockNotifierInterface) {},
			wantErr:    types.ErrTokenInvalidOrExpired,
		},
		{
			name:  "concurrent acceptance",
			token: "tok",
			setupMocks: func(s *MockStorageInterface, n *MockNotifierInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().LockMembershipRequestByToken(gomock.Any(), "tok").Return(pending(), nil)
				s.EXPECT().LockUser(gomock.Any(), int64(9)).Return(&types.User{ID: 9, PasswordHash: "hash"}, nil)
				s.EXPECT().CountMemberships(gomock.Any(), int64(9)).Return(1, nil)
				s.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			wantErr: types.ErrAlreadyMember,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockNotifier := NewMockNotifierInterface(ctrl)
			test.setupMocks(mockStorage, mockNotifier)

			s := newTestService(ctrl, mockStorage, mockNotifier, "membership.Service.AcceptInvite")

			m, err := s.AcceptInvite(context.Background(), test.token)

			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("expected error %v, got %v", test.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.IsDefault != test.wantDefault {
				t.Errorf("expected default %v, got %v", test.wantDefault, m.IsDefault)
			}
		})
	}
}
