// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/business-service/internal/notifier"
	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/types"
)

type ServiceInterface interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Me(ctx context.Context, s *session.Session) (*Profile, error)
	SwitchBusiness(ctx context.Context, s *session.Session, businessID int64) (*session.Session, error)
	ResetPassword(ctx context.Context, token, password string) error
	ForgotPassword(ctx context.Context, email string) error
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetBusiness(ctx context.Context, id int64) (*types.Business, error)
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	LockUserByToken(ctx context.Context, token string) (*types.User, error)
	SetUserPassword(ctx context.Context, userID int64, hash string) error
	SetUserToken(ctx context.Context, userID int64, token string, expiry time.Time) error
	GetMembership(ctx context.Context, userID, businessID int64) (*types.Membership, error)
	ListMemberships(ctx context.Context, userID int64) ([]*types.Membership, error)
}

type AuthorizerInterface interface {
	IsAdmin(ctx context.Context, businessID, userID int64) (bool, error)
	IsManager(ctx context.Context, businessID, userID int64) (bool, error)
}

type NotifierInterface interface {
	SendPasswordReset(ctx context.Context, reset *notifier.PasswordReset) error
}

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

type SessionManagerInterface interface {
	Create(ctx context.Context, w http.ResponseWriter, s *session.Session) (string, error)
	Update(ctx context.Context, id string, s *session.Session) error
	Destroy(ctx context.Context, w http.ResponseWriter, id string) error
}
