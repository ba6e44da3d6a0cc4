// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/business-service/internal/types"
)

var departmentColumns = []string{
	"id", "business_id", "name", "prevent_edit", "prevent_delete", "updated_by_user_id", "created_at", "updated_at",
}

func scanDepartment(row sq.RowScanner) (*types.Department, error) {
	var (
		d         types.Department
		updatedBy sql.NullInt64
	)

	if err := row.Scan(&d.ID, &d.BusinessID, &d.Name, &d.PreventEdit, &d.PreventDelete, &updatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}

	d.UpdatedByUserID = updatedBy.Int64

	return &d, nil
}

func (s *Storage) CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDepartment")
	defer span.End()

	created := *d
	err := s.db.Statement(ctx).
		Insert("departments").
		Columns("business_id", "name", "prevent_edit", "prevent_delete", "updated_by_user_id").
		Values(d.BusinessID, d.Name, d.PreventEdit, d.PreventDelete, nullInt64(d.UpdatedByUserID)).
		Suffix("RETURNING id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert department")
	}

	return &created, nil
}

func (s *Storage) getDepartment(ctx context.Context, businessID, id int64, lock bool) (*types.Department, error) {
	query := s.db.Statement(ctx).
		Select(departmentColumns...).
		From("departments").
		Where(sq.Eq{"id": id, "business_id": businessID})

	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	d, err := scanDepartment(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

func (s *Storage) GetDepartment(ctx context.Context, businessID, id int64) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDepartment")
	defer span.End()

	return s.getDepartment(ctx, businessID, id, false)
}

// LockDepartment reads the department holding a row lock until the enclosing transaction ends
func (s *Storage) LockDepartment(ctx context.Context, businessID, id int64) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockDepartment")
	defer span.End()

	return s.getDepartment(ctx, businessID, id, true)
}

func (s *Storage) ListDepartments(ctx context.Context, businessID int64) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDepartments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(departmentColumns...).
		From("departments").
		Where(sq.Eq{"business_id": businessID}).
		OrderBy("id ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []*types.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

func (s *Storage) UpdateDepartment(ctx context.Context, d *types.Department) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDepartment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("departments").
		Set("name", d.Name).
		Set("updated_by_user_id", nullInt64(d.UpdatedByUserID)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": d.ID}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "update department")
	}

	return checkAffected(res)
}

func (s *Storage) DeleteDepartment(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDepartment")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("departments").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "delete department")
	}

	return nil
}
