// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Capability is a single permission bit a Role can be granted
type Capability string

// Scope tells whether a capability applies to the whole business or to one department
type Scope int

const (
	ScopeGlobal Scope = iota + 1
	ScopeDepartment
)

const (
	CapabilityGlobalCRUDUsers             Capability = "global_crud_users"
	CapabilityGlobalCRUDDepartment        Capability = "global_crud_department"
	CapabilityGlobalCRUDRole              Capability = "global_crud_role"
	CapabilityGlobalCRUDResources         Capability = "global_crud_resources"
	CapabilityGlobalCRUDBusiness          Capability = "global_crud_business"
	CapabilityGlobalViewReports           Capability = "global_view_reports"
	CapabilityGlobalAssignUsersToRole     Capability = "global_assign_users_to_role"
	CapabilityGlobalAssignResourcesToRole Capability = "global_assign_resources_to_role"
	CapabilityDeptCRUDRole                Capability = "dept_crud_role"
	CapabilityDeptCRUDResources           Capability = "dept_crud_resources"
	CapabilityDeptViewReports             Capability = "dept_view_reports"
	CapabilityDeptAssignUsersToRole       Capability = "dept_assign_users_to_role"
	CapabilityDeptAssignResourcesToRole   Capability = "dept_assign_resources_to_role"
)

var capabilityScopes = map[Capability]Scope{
	CapabilityGlobalCRUDUsers:             ScopeGlobal,
	CapabilityGlobalCRUDDepartment:        ScopeGlobal,
	CapabilityGlobalCRUDRole:              ScopeGlobal,
	CapabilityGlobalCRUDResources:         ScopeGlobal,
	CapabilityGlobalCRUDBusiness:          ScopeGlobal,
	CapabilityGlobalViewReports:           ScopeGlobal,
	CapabilityGlobalAssignUsersToRole:     ScopeGlobal,
	CapabilityGlobalAssignResourcesToRole: ScopeGlobal,
	CapabilityDeptCRUDRole:                ScopeDepartment,
	CapabilityDeptCRUDResources:           ScopeDepartment,
	CapabilityDeptViewReports:             ScopeDepartment,
	CapabilityDeptAssignUsersToRole:       ScopeDepartment,
	CapabilityDeptAssignResourcesToRole:   ScopeDepartment,
}

// Scope returns the scope of a known capability, false for anything outside the registry
func (c Capability) Scope() (Scope, bool) {
	s, ok := capabilityScopes[c]
	return s, ok
}

func (c Capability) Valid() bool {
	_, ok := capabilityScopes[c]
	return ok
}

// AllCapabilities lists the registry in a stable order
func AllCapabilities() []Capability {
	caps := make([]Capability, 0, len(capabilityScopes))
	for c := range capabilityScopes {
		caps = append(caps, c)
	}
	slices.Sort(caps)

	return caps
}

// ParseCapabilities converts raw identifiers, rejecting unknown ones
func ParseCapabilities(raw []string) ([]Capability, error) {
	caps := make([]Capability, 0, len(raw))
	for _, r := range raw {
		c := Capability(r)
		if !c.Valid() {
			return nil, NewParamError(fmt.Sprintf("unknown capability %q", r))
		}
		caps = append(caps, c)
	}

	return caps, nil
}

// CapabilitySet is the grant held by a Role's Permission
type CapabilitySet map[Capability]struct{}

func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}

	return s
}

func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

func (s CapabilitySet) Add(c Capability) {
	s[c] = struct{}{}
}

func (s CapabilitySet) Slice() []Capability {
	caps := make([]Capability, 0, len(s))
	for c := range s {
		caps = append(caps, c)
	}
	slices.Sort(caps)

	return caps
}

func (s CapabilitySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *CapabilitySet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	caps, err := ParseCapabilities(raw)
	if err != nil {
		return err
	}

	*s = NewCapabilitySet(caps...)

	return nil
}
