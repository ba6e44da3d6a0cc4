// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/business-service/internal/types"
)

var userColumns = []string{
	"u.id", "u.email", "u.password_hash", "u.first_name", "u.last_name", "u.phone", "u.token", "u.token_expiry", "u.created_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var (
		u           types.User
		hash, token sql.NullString
		expiry      sql.NullTime
	)

	if err := row.Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.LastName, &u.Phone, &token, &expiry, &u.CreatedAt); err != nil {
		return nil, err
	}

	u.PasswordHash = hash.String
	u.Token = token.String
	if expiry.Valid {
		u.TokenExpiry = &expiry.Time
	}

	return &u, nil
}

func (s *Storage) selectUsers(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).Select(userColumns...).From("users u")
}

func (s *Storage) getUser(ctx context.Context, query sq.SelectBuilder) (*types.User, error) {
	u, err := scanUser(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// CreateUser inserts a user, the email is stored lower-cased
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	created := *u
	created.Email = strings.ToLower(strings.TrimSpace(u.Email))

	err := s.db.Statement(ctx).
		Insert("users").
		Columns("email", "password_hash", "first_name", "last_name", "phone").
		Values(created.Email, nullString(u.PasswordHash), u.FirstName, u.LastName, u.Phone).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert user")
	}

	return &created, nil
}

// CreateInvitedUser inserts a passwordless user. A taken email yields ErrDuplicateKey
// and leaves the enclosing transaction usable.
func (s *Storage) CreateInvitedUser(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitedUser")
	defer span.End()

	created := types.User{Email: strings.ToLower(strings.TrimSpace(email))}

	err := s.db.Statement(ctx).
		Insert("users").
		Columns("email").
		Values(created.Email).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if isNoRows(err) {
		return nil, fmt.Errorf("insert invited user: %w", ErrDuplicateKey)
	}
	if err != nil {
		return nil, wrapWriteError(err, "insert invited user")
	}

	return &created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.id": id}))
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.email": strings.ToLower(strings.TrimSpace(email))}))
}

func (s *Storage) LockUser(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockUser")
	defer span.End()

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.id": id}).Suffix("FOR UPDATE"))
}

func (s *Storage) LockUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockUserByEmail")
	defer span.End()

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.email": strings.ToLower(strings.TrimSpace(email))}).Suffix("FOR UPDATE"))
}

func (s *Storage) LockUserByToken(ctx context.Context, token string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockUserByToken")
	defer span.End()

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.token": token}).Suffix("FOR UPDATE"))
}

// GetMemberUser returns the user only if it holds a membership in businessID
func (s *Storage) GetMemberUser(ctx context.Context, businessID, userID int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMemberUser")
	defer span.End()

	return s.getUser(ctx,
		s.selectUsers(ctx).
			Join("memberships m ON m.user_id = u.id").
			Where(sq.Eq{"u.id": userID, "m.business_id": businessID}),
	)
}

// UpdateUser updates the fields named in paths, PATCH style.
// Unknown paths are ignored, an empty update is a no-op.
func (s *Storage) UpdateUser(ctx context.Context, u *types.User, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "first_name":
			updateMap["first_name"] = u.FirstName
		case "last_name":
			updateMap["last_name"] = u.LastName
		case "phone":
			updateMap["phone"] = u.Phone
		case "password_hash":
			updateMap["password_hash"] = nullString(u.PasswordHash)
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(updateMap).
		Where(sq.Eq{"id": u.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return checkAffected(res)
}

// SetUserPassword stores a new hash and consumes any outstanding token
func (s *Storage) SetUserPassword(ctx context.Context, userID int64, hash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserPassword")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("password_hash", hash).
		Set("token", nil).
		Set("token_expiry", nil).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set user password: %w", err)
	}

	return checkAffected(res)
}

func (s *Storage) SetUserToken(ctx context.Context, userID int64, token string, expiry time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("token", token).
		Set("token_expiry", expiry).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "set user token")
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
