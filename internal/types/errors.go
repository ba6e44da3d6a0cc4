// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

// Error kinds surfaced to clients, mapped to status codes by internal/http/types
var (
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrPermissions           = errors.New("insufficient permissions")
	ErrLocked                = errors.New("resource is locked")
	ErrDependentsExist       = errors.New("users are still associated with this role; reassign them first")
	ErrTokenInvalidOrExpired = errors.New("invite token invalid or expired")
	ErrResetTokenInvalid     = errors.New("reset token invalid or expired")
	ErrAlreadyMember         = errors.New("user is already a member of this business")
	ErrParameters            = errors.New("invalid parameters")
	ErrNotFound              = errors.New("not found")
)

// ParamError is an ErrParameters carrying a reason safe to show to the client
type ParamError struct {
	Reason string
}

func (e *ParamError) Error() string {
	return e.Reason
}

func (e *ParamError) Is(target error) bool {
	return target == ErrParameters
}

func NewParamError(reason string) error {
	return &ParamError{Reason: reason}
}
