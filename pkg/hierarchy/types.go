// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"github.com/canonical/business-service/internal/types"
)

// RoleSpec describes a role to be created
type RoleSpec struct {
	Name         string
	Access       types.Access
	Capabilities []types.Capability
}

// RoleUpdate carries the role fields to change, nil fields are left alone
type RoleUpdate struct {
	Name         *string
	Access       *types.Access
	Capabilities []types.Capability
}

type DepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CreateRoleRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Access       string   `json:"access" validate:"required,oneof=ADMIN MANAGER USER"`
	Capabilities []string `json:"capabilities" validate:"max=32"`
}

type UpdateRoleRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Access       *string  `json:"access,omitempty" validate:"omitempty,oneof=ADMIN MANAGER USER"`
	Capabilities []string `json:"capabilities" validate:"max=32"`
}

type AssignUserRequest struct {
	UserID  int64 `json:"user_id" validate:"required,gt=0"`
	Primary bool  `json:"primary"`
}
