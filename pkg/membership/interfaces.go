// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"time"

	"github.com/canonical/business-service/internal/notifier"
	"github.com/canonical/business-service/internal/types"
)

type ServiceInterface interface {
	SendInvite(ctx context.Context, businessID, inviterID int64, email string) (*types.MembershipRequest, error)
	AcceptInvite(ctx context.Context, token string) (*types.Membership, error)
	ListInvites(ctx context.Context, businessID int64) ([]*types.MembershipRequest, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetBusiness(ctx context.Context, id int64) (*types.Business, error)
	CreateInvitedUser(ctx context.Context, email string) (*types.User, error)
	LockUser(ctx context.Context, id int64) (*types.User, error)
	LockUserByEmail(ctx context.Context, email string) (*types.User, error)
	SetUserToken(ctx context.Context, userID int64, token string, expiry time.Time) error
	GetMembership(ctx context.Context, userID, businessID int64) (*types.Membership, error)
	CountMemberships(ctx context.Context, userID int64) (int, error)
	CreateMembership(ctx context.Context, membership *types.Membership) (*types.Membership, error)
	CreateMembershipRequest(ctx context.Context, r *types.MembershipRequest) (*types.MembershipRequest, error)
	LockMembershipRequest(ctx context.Context, userID, businessID int64) (*types.MembershipRequest, error)
	LockMembershipRequestByToken(ctx context.Context, token string) (*types.MembershipRequest, error)
	RefreshMembershipRequest(ctx context.Context, id int64, token string, expiry time.Time, updatedBy int64) error
	DeleteMembershipRequest(ctx context.Context, id int64) error
	ListMembershipRequests(ctx context.Context, businessID int64) ([]*types.MembershipRequest, error)
}

type NotifierInterface interface {
	SendInvite(ctx context.Context, invite *notifier.Invite) error
	SendPasswordReset(ctx context.Context, reset *notifier.PasswordReset) error
}
