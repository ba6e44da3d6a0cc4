// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
)

// PingerInterface is satisfied by the database client and the session store
type PingerInterface interface {
	Ping(ctx context.Context) error
}
