// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/business-service/internal/types"
)

type ServiceInterface interface {
	GetUser(ctx context.Context, businessID, userID int64) (*types.User, error)
	UpdateUser(ctx context.Context, businessID, userID int64, update *Update) (*types.User, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetMemberUser(ctx context.Context, businessID, userID int64) (*types.User, error)
	UpdateUser(ctx context.Context, u *types.User, paths []string) error
}
