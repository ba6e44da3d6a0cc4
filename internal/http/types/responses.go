// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/types"
)

const (
	MessageNotAuthenticated   = "not authenticated"
	MessageInvalidCredentials = "invalid email or password"
	MessagePermissions        = "insufficient permissions"
	MessageLocked             = "this resource is locked and cannot be changed"
	MessageInviteInvalid      = "This invite is no longer valid. Ask your manager for another invite."
	MessageResetInvalid       = "This reset link is no longer valid. Request a new one."
	MessageParameters         = "invalid parameters"
	MessageNotFound           = "not found"
	MessageInternal           = "internal server error"
)

// Response is the envelope of every JSON body the API writes
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Data:    data,
			Message: http.StatusText(status),
			Status:  status,
		},
	)
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Message: message,
			Status:  status,
		},
	)
}

// StatusFor maps an error kind to the status code and the fixed message shown to clients
func StatusFor(err error) (int, string) {
	var paramErr *types.ParamError

	switch {
	case errors.Is(err, types.ErrNotAuthenticated):
		return http.StatusUnauthorized, MessageNotAuthenticated
	case errors.Is(err, types.ErrInvalidCredentials):
		return http.StatusUnauthorized, MessageInvalidCredentials
	case errors.Is(err, types.ErrPermissions):
		return http.StatusForbidden, MessagePermissions
	case errors.Is(err, types.ErrLocked):
		return http.StatusMethodNotAllowed, MessageLocked
	case errors.Is(err, types.ErrDependentsExist):
		return http.StatusBadRequest, types.ErrDependentsExist.Error()
	case errors.Is(err, types.ErrTokenInvalidOrExpired):
		return http.StatusNotFound, MessageInviteInvalid
	case errors.Is(err, types.ErrResetTokenInvalid):
		return http.StatusNotFound, MessageResetInvalid
	case errors.Is(err, types.ErrAlreadyMember):
		return http.StatusBadRequest, types.ErrAlreadyMember.Error()
	case errors.As(err, &paramErr):
		return http.StatusBadRequest, paramErr.Reason
	case errors.Is(err, types.ErrParameters):
		return http.StatusBadRequest, MessageParameters
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound, MessageNotFound
	}

	return http.StatusInternalServerError, MessageInternal
}

// WriteError writes the client facing form of err, internal errors are logged in full
// and never leave the server
func WriteError(w http.ResponseWriter, logger logging.LoggerInterface, err error) {
	status, message := StatusFor(err)

	if status == http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
	}

	WriteMessage(w, status, message)
}
