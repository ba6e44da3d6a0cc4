// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"context"

	"github.com/canonical/business-service/internal/types"
)

type ServiceInterface interface {
	ListDepartments(ctx context.Context, businessID int64) ([]*types.Department, error)
	CreateDepartment(ctx context.Context, businessID, actorID int64, name string) (*types.Department, error)
	UpdateDepartment(ctx context.Context, businessID, actorID, departmentID int64, name string) (*types.Department, error)
	DeleteDepartment(ctx context.Context, businessID, departmentID int64) error

	ListRoles(ctx context.Context, businessID, departmentID int64) ([]*types.Role, error)
	CreateRole(ctx context.Context, businessID, actorID, departmentID int64, role *RoleSpec) (*types.Role, error)
	UpdateRole(ctx context.Context, businessID, actorID, departmentID, roleID int64, update *RoleUpdate) (*types.Role, error)
	DeleteRole(ctx context.Context, businessID, departmentID, roleID int64) error

	AssignUser(ctx context.Context, businessID, actorID, departmentID, roleID, userID int64, primary bool) (*types.UserRole, error)
	UnassignUser(ctx context.Context, businessID, departmentID, roleID, userID int64) error
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

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

	GetMemberUser(ctx context.Context, businessID, userID int64) (*types.User, error)
	CreateUserRole(ctx context.Context, ur *types.UserRole) (*types.UserRole, error)
	DeleteUserRole(ctx context.Context, userID, roleID int64) error
	CountUserRoles(ctx context.Context, roleIDs []int64) (int, error)
}
