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

var roleColumns = []string{
	"r.id", "r.department_id", "r.name", "r.access", "r.permission_id", "r.prevent_edit", "r.prevent_delete", "r.updated_by_user_id", "r.created_at", "r.updated_at",
}

func scanRole(row sq.RowScanner) (*types.Role, error) {
	var (
		r         types.Role
		access    string
		updatedBy sql.NullInt64
	)

	if err := row.Scan(&r.ID, &r.DepartmentID, &r.Name, &access, &r.PermissionID, &r.PreventEdit, &r.PreventDelete, &updatedBy, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	r.Access = types.Access(access)
	r.UpdatedByUserID = updatedBy.Int64

	return &r, nil
}

// CreatePermission stores a new permission bundle and returns its id
func (s *Storage) CreatePermission(ctx context.Context, caps []types.Capability) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePermission")
	defer span.End()

	var id int64
	err := s.db.Statement(ctx).
		Insert("permissions").
		Columns("created_at").
		Values(sq.Expr("NOW()")).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to insert permission: %w", err)
	}

	if err := s.insertCapabilities(ctx, id, caps); err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Storage) insertCapabilities(ctx context.Context, permissionID int64, caps []types.Capability) error {
	if len(caps) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("permission_capabilities").
		Columns("permission_id", "capability")

	for _, c := range types.NewCapabilitySet(caps...).Slice() {
		query = query.Values(permissionID, string(c))
	}

	if _, err := query.ExecContext(ctx); err != nil {
		return wrapWriteError(err, "insert permission capabilities")
	}

	return nil
}

func (s *Storage) ReplacePermissionCapabilities(ctx context.Context, permissionID int64, caps []types.Capability) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplacePermissionCapabilities")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("permission_capabilities").
		Where(sq.Eq{"permission_id": permissionID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear permission capabilities: %w", err)
	}

	return s.insertCapabilities(ctx, permissionID, caps)
}

// DeletePermission removes the bundle, its capabilities go with it
func (s *Storage) DeletePermission(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePermission")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("permissions").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "delete permission")
	}

	return nil
}

func (s *Storage) loadCapabilities(ctx context.Context, roles []*types.Role) error {
	if len(roles) == 0 {
		return nil
	}

	byPermission := make(map[int64]*types.Role, len(roles))
	ids := make([]int64, 0, len(roles))
	for _, r := range roles {
		r.Capabilities = types.NewCapabilitySet()
		byPermission[r.PermissionID] = r
		ids = append(ids, r.PermissionID)
	}

	rows, err := s.db.Statement(ctx).
		Select("permission_id", "capability").
		From("permission_capabilities").
		Where(sq.Eq{"permission_id": ids}).
		QueryContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to load capabilities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			permissionID int64
			capability   string
		)
		if err := rows.Scan(&permissionID, &capability); err != nil {
			return fmt.Errorf("failed to scan capability: %w", err)
		}

		c := types.Capability(capability)
		if !c.Valid() {
			s.logger.Warnf("ignoring unknown capability %q on permission %d", capability, permissionID)
			continue
		}

		if r, ok := byPermission[permissionID]; ok {
			r.Capabilities.Add(c)
		}
	}

	return rows.Err()
}

func (s *Storage) CreateRole(ctx context.Context, r *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	created := *r
	err := s.db.Statement(ctx).
		Insert("roles").
		Columns("department_id", "name", "access", "permission_id", "prevent_edit", "prevent_delete", "updated_by_user_id").
		Values(r.DepartmentID, r.Name, string(r.Access), r.PermissionID, r.PreventEdit, r.PreventDelete, nullInt64(r.UpdatedByUserID)).
		Suffix("RETURNING id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert role")
	}

	return &created, nil
}

func (s *Storage) getRole(ctx context.Context, businessID, departmentID, id int64, lock bool) (*types.Role, error) {
	query := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles r").
		Join("departments d ON d.id = r.department_id").
		Where(sq.Eq{"r.id": id, "r.department_id": departmentID, "d.business_id": businessID})

	if lock {
		query = query.Suffix("FOR UPDATE OF r")
	}

	r, err := scanRole(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	if err := s.loadCapabilities(ctx, []*types.Role{r}); err != nil {
		return nil, err
	}

	return r, nil
}

// GetRole returns a role with its capabilities, scoped to its department and business
func (s *Storage) GetRole(ctx context.Context, businessID, departmentID, id int64) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRole")
	defer span.End()

	return s.getRole(ctx, businessID, departmentID, id, false)
}

func (s *Storage) LockRole(ctx context.Context, businessID, departmentID, id int64) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockRole")
	defer span.End()

	return s.getRole(ctx, businessID, departmentID, id, true)
}

func (s *Storage) listRoles(ctx context.Context, query sq.SelectBuilder) ([]*types.Role, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// LockDepartmentRoles locks every role of a department, capabilities are not loaded
func (s *Storage) LockDepartmentRoles(ctx context.Context, departmentID int64) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockDepartmentRoles")
	defer span.End()

	return s.listRoles(ctx,
		s.db.Statement(ctx).
			Select(roleColumns...).
			From("roles r").
			Where(sq.Eq{"r.department_id": departmentID}).
			OrderBy("r.id ASC").
			Suffix("FOR UPDATE"),
	)
}

func (s *Storage) ListRoles(ctx context.Context, businessID, departmentID int64) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoles")
	defer span.End()

	roles, err := s.listRoles(ctx,
		s.db.Statement(ctx).
			Select(roleColumns...).
			From("roles r").
			Join("departments d ON d.id = r.department_id").
			Where(sq.Eq{"r.department_id": departmentID, "d.business_id": businessID}).
			OrderBy("r.id ASC"),
	)
	if err != nil {
		return nil, err
	}

	if err := s.loadCapabilities(ctx, roles); err != nil {
		return nil, err
	}

	return roles, nil
}

func (s *Storage) UpdateRole(ctx context.Context, r *types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("roles").
		Set("name", r.Name).
		Set("access", string(r.Access)).
		Set("updated_by_user_id", nullInt64(r.UpdatedByUserID)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": r.ID}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "update role")
	}

	return checkAffected(res)
}

func (s *Storage) DeleteRole(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("roles").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "delete role")
	}

	return nil
}

func (s *Storage) CreateUserRole(ctx context.Context, ur *types.UserRole) (*types.UserRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUserRole")
	defer span.End()

	created := *ur
	err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role_id", "primary_role_for_user", "updated_by_user_id").
		Values(ur.UserID, ur.RoleID, ur.PrimaryRoleForUser, nullInt64(ur.UpdatedByUserID)).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&created.ID)

	if err != nil {
		return nil, wrapWriteError(err, "insert user role")
	}

	return &created, nil
}

func (s *Storage) DeleteUserRole(ctx context.Context, userID, roleID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUserRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID, "role_id": roleID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user role: %w", err)
	}

	return checkAffected(res)
}

// CountUserRoles counts the assignments referencing any of roleIDs
func (s *Storage) CountUserRoles(ctx context.Context, roleIDs []int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUserRoles")
	defer span.End()

	if len(roleIDs) == 0 {
		return 0, nil
	}

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("user_roles").
		Where(sq.Eq{"role_id": roleIDs}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count user roles: %w", err)
	}

	return count, nil
}

// ListUserRoleGrants returns every role the user holds in a department of businessID,
// with the capabilities of each role's permission
func (s *Storage) ListUserRoleGrants(ctx context.Context, userID, businessID int64) ([]*types.RoleGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserRoleGrants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("r.id", "r.department_id", "r.access", "pc.capability").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Join("departments d ON d.id = r.department_id").
		LeftJoin("permission_capabilities pc ON pc.permission_id = r.permission_id").
		Where(sq.Eq{"ur.user_id": userID, "d.business_id": businessID}).
		OrderBy("r.id ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list role grants: %w", err)
	}
	defer rows.Close()

	var grants []*types.RoleGrant
	byRole := make(map[int64]*types.RoleGrant)

	for rows.Next() {
		var (
			roleID, departmentID int64
			access               string
			capability           sql.NullString
		)
		if err := rows.Scan(&roleID, &departmentID, &access, &capability); err != nil {
			return nil, fmt.Errorf("failed to scan role grant: %w", err)
		}

		g, ok := byRole[roleID]
		if !ok {
			g = &types.RoleGrant{
				RoleID:       roleID,
				DepartmentID: departmentID,
				Access:       types.Access(access),
				Capabilities: types.NewCapabilitySet(),
			}
			byRole[roleID] = g
			grants = append(grants, g)
		}

		if c := types.Capability(capability.String); capability.Valid && c.Valid() {
			g.Capabilities.Add(c)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grants, nil
}
