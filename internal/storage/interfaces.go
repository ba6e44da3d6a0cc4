// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/business-service/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	CreateBusiness(ctx context.Context, b *types.Business) (*types.Business, error)
	GetBusiness(ctx context.Context, id int64) (*types.Business, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	CreateInvitedUser(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	LockUser(ctx context.Context, id int64) (*types.User, error)
	LockUserByEmail(ctx context.Context, email string) (*types.User, error)
	LockUserByToken(ctx context.Context, token string) (*types.User, error)
	GetMemberUser(ctx context.Context, businessID, userID int64) (*types.User, error)
	UpdateUser(ctx context.Context, u *types.User, paths []string) error
	SetUserPassword(ctx context.Context, userID int64, hash string) error
	SetUserToken(ctx context.Context, userID int64, token string, expiry time.Time) error

	CreateMembership(ctx context.Context, membership *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, userID, businessID int64) (*types.Membership, error)
	ListMemberships(ctx context.Context, userID int64) ([]*types.Membership, error)
	CountMemberships(ctx context.Context, userID int64) (int, error)

	CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error)
	GetDepartment(ctx context.Context, businessID, id int64) (*types.Department, error)
	LockDepartment(ctx context.Context, businessID, id int64) (*types.Department, error)
	ListDepartments(ctx context.Context, businessID int64) ([]*types.Department, error)
	UpdateDepartment(ctx context.Context, d *types.Department) error
	DeleteDepartment(ctx context.Context, id int64) error

	CreatePermission(ctx context.Context, caps []types.Capability) (int64, error)
	ReplacePermissionCapabilities(ctx context.Context, permissionID int64, caps []types.Capability) error
	DeletePermission(ctx context.Context, id int64) error

	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	GetRole(ctx context.Context, businessID, departmentID, id int64) (*types.Role, error)
	LockRole(ctx context.Context, businessID, departmentID, id int64) (*types.Role, error)
	LockDepartmentRoles(ctx context.Context, departmentID int64) ([]*types.Role, error)
	ListRoles(ctx context.Context, businessID, departmentID int64) ([]*types.Role, error)
	UpdateRole(ctx context.Context, r *types.Role) error
	DeleteRole(ctx context.Context, id int64) error

	CreateUserRole(ctx context.Context, ur *types.UserRole) (*types.UserRole, error)
	DeleteUserRole(ctx context.Context, userID, roleID int64) error
	CountUserRoles(ctx context.Context, roleIDs []int64) (int, error)
	ListUserRoleGrants(ctx context.Context, userID, businessID int64) ([]*types.RoleGrant, error)

	CreateMembershipRequest(ctx context.Context, r *types.MembershipRequest) (*types.MembershipRequest, error)
	LockMembershipRequest(ctx context.Context, userID, businessID int64) (*types.MembershipRequest, error)
	LockMembershipRequestByToken(ctx context.Context, token string) (*types.MembershipRequest, error)
	RefreshMembershipRequest(ctx context.Context, id int64, token string, expiry time.Time, updatedBy int64) error
	DeleteMembershipRequest(ctx context.Context, id int64) error
	ListMembershipRequests(ctx context.Context, businessID int64) ([]*types.MembershipRequest, error)
}
