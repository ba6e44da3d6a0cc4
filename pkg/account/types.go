// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"github.com/canonical/business-service/internal/types"
)

// Profile is the view of the logged-in user within the current business
type Profile struct {
	User        *types.User     `json:"user"`
	Business    *types.Business `json:"business"`
	BusinessIDs []int64         `json:"business_ids"`
	IsAdmin     bool            `json:"is_admin"`
	IsManager   bool            `json:"is_manager"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

type SwitchBusinessRequest struct {
	BusinessID int64 `json:"business_id" validate:"required,gt=0"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required,max=128"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}
