// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/tracing"
)

const (
	invitesPath        = "/invites"
	passwordResetsPath = "/password-resets"
)

var _ NotifierInterface = (*WebhookNotifier)(nil)

// WebhookNotifier posts notifications as JSON to a downstream delivery service
type WebhookNotifier struct {
	client *resty.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (n *WebhookNotifier) SendInvite(ctx context.Context, invite *Invite) error {
	ctx, span := n.tracer.Start(ctx, "notifier.WebhookNotifier.SendInvite")
	defer span.End()

	return n.post(ctx, invitesPath, invite)
}

func (n *WebhookNotifier) SendPasswordReset(ctx context.Context, reset *PasswordReset) error {
	ctx, span := n.tracer.Start(ctx, "notifier.WebhookNotifier.SendPasswordReset")
	defer span.End()

	return n.post(ctx, passwordResetsPath, reset)
}

func (n *WebhookNotifier) post(ctx context.Context, path string, body any) error {
	var result webhookResponse

	// the same key is sent on every retry so the receiver can drop duplicates
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(path)

	if err != nil {
		return fmt.Errorf("failed to call notifier: %w", err)
	}

	if resp.IsError() {
		n.logger.Debugf("notifier %s replied %d: %s", path, resp.StatusCode(), result.Message)
		return fmt.Errorf("notifier returned status %d", resp.StatusCode())
	}

	return nil
}

func NewWebhookNotifier(baseURL, token string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *WebhookNotifier {
	n := new(WebhookNotifier)

	n.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if token != "" {
		n.client.SetAuthToken(token)
	}

	n.tracer = tracer
	n.monitor = monitor
	n.logger = logger

	return n
}
