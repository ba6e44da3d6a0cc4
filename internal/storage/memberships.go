// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/business-service/internal/types"
)

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	created := *m
	err := s.db.Statement(ctx).
		Insert("memberships").
		Columns("user_id", "business_id", "is_default", "prevent_delete").
		Values(m.UserID, m.BusinessID, m.IsDefault, m.PreventDelete).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert membership")
	}

	return &created, nil
}

func (s *Storage) GetMembership(ctx context.Context, userID, businessID int64) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "user_id", "business_id", "is_default", "prevent_delete", "created_at").
		From("memberships").
		Where(sq.Eq{"user_id": userID, "business_id": businessID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.BusinessID, &m.IsDefault, &m.PreventDelete, &m.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// ListMemberships returns the memberships of a user, default first
func (s *Storage) ListMemberships(ctx context.Context, userID int64) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMemberships")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "user_id", "business_id", "is_default", "prevent_delete", "created_at").
		From("memberships").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_default DESC", "id ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.BusinessID, &m.IsDefault, &m.PreventDelete, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

func (s *Storage) CountMemberships(ctx context.Context, userID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMemberships")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}

	return count, nil
}
