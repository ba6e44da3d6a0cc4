// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifier

import (
	"context"

	"github.com/canonical/business-service/internal/logging"
)

var _ NotifierInterface = (*NoopNotifier)(nil)

// NoopNotifier only logs, used when no NOTIFIER_URL is configured
type NoopNotifier struct {
	logger logging.LoggerInterface
}

func (n *NoopNotifier) SendInvite(_ context.Context, invite *Invite) error {
	n.logger.Debugf("notifier disabled, dropping invite of user %d into business %d", invite.InviteeID, invite.BusinessID)
	return nil
}

func (n *NoopNotifier) SendPasswordReset(_ context.Context, reset *PasswordReset) error {
	n.logger.Debugf("notifier disabled, dropping password reset of user %d", reset.UserID)
	return nil
}

func NewNoopNotifier(logger logging.LoggerInterface) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}
