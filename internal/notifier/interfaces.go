// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifier

import (
	"context"
)

// NotifierInterface delivers out of band messages, mail delivery itself happens downstream
type NotifierInterface interface {
	SendInvite(ctx context.Context, invite *Invite) error
	SendPasswordReset(ctx context.Context, reset *PasswordReset) error
}
