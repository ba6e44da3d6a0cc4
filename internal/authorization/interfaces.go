// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/business-service/internal/types"
)

type AuthorizerInterface interface {
	// CheckPermission decides whether the user holds every required capability in the business.
	// Department capabilities are matched against roles of any department.
	CheckPermission(ctx context.Context, userID, businessID int64, required []types.Capability) (bool, error)
	// CheckDepartmentPermission is CheckPermission with department capabilities restricted
	// to roles of departmentID
	CheckDepartmentPermission(ctx context.Context, userID, businessID, departmentID int64, required []types.Capability) (bool, error)
	IsAdmin(ctx context.Context, businessID, userID int64) (bool, error)
	IsManager(ctx context.Context, businessID, userID int64) (bool, error)
}

type GrantStoreInterface interface {
	ListUserRoleGrants(ctx context.Context, userID, businessID int64) ([]*types.RoleGrant, error)
}
