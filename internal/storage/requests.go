// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/business-service/internal/types"
)

var requestColumns = []string{
	"mr.id", "mr.business_id", "mr.user_id", "u.email", "mr.token", "mr.token_expiry", "mr.updated_by_user_id", "mr.created_at", "mr.updated_at",
}

func scanRequest(row sq.RowScanner) (*types.MembershipRequest, error) {
	var (
		r         types.MembershipRequest
		updatedBy sql.NullInt64
	)

	if err := row.Scan(&r.ID, &r.BusinessID, &r.UserID, &r.Email, &r.Token, &r.TokenExpiry, &updatedBy, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	r.UpdatedByUserID = updatedBy.Int64

	return &r, nil
}

func (s *Storage) selectRequests(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(requestColumns...).
		From("membership_requests mr").
		Join("users u ON u.id = mr.user_id")
}

func (s *Storage) getRequest(ctx context.Context, query sq.SelectBuilder) (*types.MembershipRequest, error) {
	r, err := scanRequest(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership request: %w", err)
	}

	return r, nil
}

func (s *Storage) CreateMembershipRequest(ctx context.Context, r *types.MembershipRequest) (*types.MembershipRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembershipRequest")
	defer span.End()

	created := *r
	err := s.db.Statement(ctx).
		Insert("membership_requests").
		Columns("business_id", "user_id", "token", "token_expiry", "updated_by_user_id").
		Values(r.BusinessID, r.UserID, r.Token, r.TokenExpiry, nullInt64(r.UpdatedByUserID)).
		Suffix("RETURNING id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert membership request")
	}

	return &created, nil
}

// LockMembershipRequest locks the pending request of userID into businessID
func (s *Storage) LockMembershipRequest(ctx context.Context, userID, businessID int64) (*types.MembershipRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockMembershipRequest")
	defer span.End()

	return s.getRequest(ctx,
		s.selectRequests(ctx).
			Where(sq.Eq{"mr.user_id": userID, "mr.business_id": businessID}).
			Suffix("FOR UPDATE OF mr"),
	)
}

func (s *Storage) LockMembershipRequestByToken(ctx context.Context, token string) (*types.MembershipRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockMembershipRequestByToken")
	defer span.End()

	return s.getRequest(ctx,
		s.selectRequests(ctx).
			Where(sq.Eq{"mr.token": token}).
			Suffix("FOR UPDATE OF mr"),
	)
}

// RefreshMembershipRequest reissues the token of an existing request in place
func (s *Storage) RefreshMembershipRequest(ctx context.Context, id int64, token string, expiry time.Time, updatedBy int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RefreshMembershipRequest")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("membership_requests").
		Set("token", token).
		Set("token_expiry", expiry).
		Set("updated_by_user_id", nullInt64(updatedBy)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "refresh membership request")
	}

	return checkAffected(res)
}

func (s *Storage) DeleteMembershipRequest(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembershipRequest")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("membership_requests").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete membership request: %w", err)
	}

	return checkAffected(res)
}

func (s *Storage) ListMembershipRequests(ctx context.Context, businessID int64) ([]*types.MembershipRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipRequests")
	defer span.End()

	rows, err := s.selectRequests(ctx).
		Where(sq.Eq{"mr.business_id": businessID}).
		OrderBy("mr.created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list membership requests: %w", err)
	}
	defer rows.Close()

	var requests []*types.MembershipRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership request: %w", err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}
