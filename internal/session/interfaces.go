// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"time"
)

// StoreInterface persists session payloads keyed by the opaque cookie id.
// Load returns a nil Payload and no error when the id is unknown.
type StoreInterface interface {
	Load(ctx context.Context, id string) (Payload, error)
	Save(ctx context.Context, id string, p Payload, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
