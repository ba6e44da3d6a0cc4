// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"context"
	"net/http"

	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/types"
)

type ServiceInterface interface {
	Register(ctx context.Context, r *Registration) (*session.Session, error)
	GetBusiness(ctx context.Context, businessID int64) (*types.Business, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateBusiness(ctx context.Context, b *types.Business) (*types.Business, error)
	GetBusiness(ctx context.Context, id int64) (*types.Business, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	LockUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUser(ctx context.Context, u *types.User, paths []string) error
	SetUserPassword(ctx context.Context, userID int64, hash string) error
	CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error)
	CreatePermission(ctx context.Context, caps []types.Capability) (int64, error)
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	CreateUserRole(ctx context.Context, ur *types.UserRole) (*types.UserRole, error)
	CountMemberships(ctx context.Context, userID int64) (int, error)
	CreateMembership(ctx context.Context, membership *types.Membership) (*types.Membership, error)
	ListMemberships(ctx context.Context, userID int64) ([]*types.Membership, error)
}

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
}

type SessionManagerInterface interface {
	Create(ctx context.Context, w http.ResponseWriter, s *session.Session) (string, error)
}
