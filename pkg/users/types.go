// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

// Update carries the profile fields to change, nil fields are left untouched
type Update struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
}

func (r *UpdateUserRequest) Update() *Update {
	return &Update{FirstName: r.FirstName, LastName: r.LastName, Phone: r.Phone}
}
