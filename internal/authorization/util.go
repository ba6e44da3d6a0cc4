// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/business-service/internal/types"
)

// noDepartment marks a check made without department context
const noDepartment int64 = 0

// resolve is the pure decision over the grants a user holds in one business
func resolve(grants []*types.RoleGrant, required []types.Capability, departmentID int64) bool {
	if len(required) == 0 {
		return true
	}

	if hasAccess(grants, types.AccessAdmin) {
		return true
	}

	for _, c := range required {
		if !satisfied(grants, c, departmentID) {
			return false
		}
	}

	return true
}

func satisfied(grants []*types.RoleGrant, c types.Capability, departmentID int64) bool {
	scope, ok := c.Scope()
	if !ok {
		return false
	}

	for _, g := range grants {
		if !g.Capabilities.Has(c) {
			continue
		}

		if scope == types.ScopeDepartment && departmentID != noDepartment && g.DepartmentID != departmentID {
			continue
		}

		return true
	}

	return false
}

func hasAccess(grants []*types.RoleGrant, access types.Access) bool {
	for _, g := range grants {
		if g.Access == access {
			return true
		}
	}

	return false
}
