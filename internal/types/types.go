// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Access is the coarse level a Role grants inside its business
type Access string

const (
	AccessAdmin   Access = "ADMIN"
	AccessManager Access = "MANAGER"
	AccessUser    Access = "USER"
)

func (a Access) Valid() bool {
	switch a {
	case AccessAdmin, AccessManager, AccessUser:
		return true
	}
	return false
}

type Business struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	AddressLine1 string    `db:"address_line_1" json:"address_line_1"`
	AddressLine2 string    `db:"address_line_2" json:"address_line_2"`
	City         string    `db:"city" json:"city"`
	Region       string    `db:"region" json:"region"`
	PostalCode   string    `db:"postal_code" json:"postal_code"`
	Country      string    `db:"country" json:"country"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// User is a global identity. An empty PasswordHash marks a user who never completed registration.
type User struct {
	ID           int64      `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Phone        string     `db:"phone" json:"phone"`
	Token        string     `db:"token" json:"-"`
	TokenExpiry  *time.Time `db:"token_expiry" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

type Membership struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	BusinessID    int64     `db:"business_id" json:"business_id"`
	IsDefault     bool      `db:"is_default" json:"default"`
	PreventDelete bool      `db:"prevent_delete" json:"prevent_delete"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type Department struct {
	ID              int64     `db:"id" json:"id"`
	BusinessID      int64     `db:"business_id" json:"business_id"`
	Name            string    `db:"name" json:"name"`
	PreventEdit     bool      `db:"prevent_edit" json:"prevent_edit"`
	PreventDelete   bool      `db:"prevent_delete" json:"prevent_delete"`
	UpdatedByUserID int64     `db:"updated_by_user_id" json:"updated_by_user_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type Role struct {
	ID              int64         `db:"id" json:"id"`
	DepartmentID    int64         `db:"department_id" json:"department_id"`
	Name            string        `db:"name" json:"name"`
	Access          Access        `db:"access" json:"access"`
	PermissionID    int64         `db:"permission_id" json:"-"`
	Capabilities    CapabilitySet `json:"capabilities"`
	PreventEdit     bool          `db:"prevent_edit" json:"prevent_edit"`
	PreventDelete   bool          `db:"prevent_delete" json:"prevent_delete"`
	UpdatedByUserID int64         `db:"updated_by_user_id" json:"updated_by_user_id,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

type UserRole struct {
	ID                 int64 `db:"id" json:"id"`
	UserID             int64 `db:"user_id" json:"user_id"`
	RoleID             int64 `db:"role_id" json:"role_id"`
	PrimaryRoleForUser bool  `db:"primary_role_for_user" json:"primary_role_for_user"`
	UpdatedByUserID    int64 `db:"updated_by_user_id" json:"updated_by_user_id,omitempty"`
}

// MembershipRequest is a pending invite of a user into a business
type MembershipRequest struct {
	ID              int64     `db:"id" json:"id"`
	BusinessID      int64     `db:"business_id" json:"business_id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Email           string    `json:"email,omitempty"`
	Token           string    `db:"token" json:"-"`
	TokenExpiry     time.Time `db:"token_expiry" json:"token_expiry"`
	UpdatedByUserID int64     `db:"updated_by_user_id" json:"updated_by_user_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Expired reports whether the token can no longer be redeemed at now
func (r *MembershipRequest) Expired(now time.Time) bool {
	return !now.Before(r.TokenExpiry)
}

// RoleGrant is a role held by a user, flattened for permission resolution
type RoleGrant struct {
	RoleID       int64
	DepartmentID int64
	Access       Access
	Capabilities CapabilitySet
}
