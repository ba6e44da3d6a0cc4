// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifier

import (
	"time"
)

type Invite struct {
	BusinessID   int64     `json:"business_id"`
	BusinessName string    `json:"business_name"`
	Token        string    `json:"token"`
	InviterID    int64     `json:"inviter_id"`
	InviteeID    int64     `json:"invitee_id"`
	InviteeEmail string    `json:"invitee_email"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type PasswordReset struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type webhookResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
