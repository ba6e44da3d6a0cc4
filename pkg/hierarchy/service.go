// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/storage"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListDepartments(ctx context.Context, businessID int64) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.ListDepartments")
	defer span.End()

	return s.storage.ListDepartments(ctx, businessID)
}

func (s *Service) CreateDepartment(ctx context.Context, businessID, actorID int64, name string) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.CreateDepartment")
	defer span.End()

	d, err := s.storage.CreateDepartment(ctx, &types.Department{
		BusinessID:      businessID,
		Name:            name,
		UpdatedByUserID: actorID,
	})
	if err != nil {
		return nil, duplicateName(err, "department")
	}

	return d, nil
}

// UpdateDepartment renames a department unless it is edit locked
func (s *Service) UpdateDepartment(ctx context.Context, businessID, actorID, departmentID int64, name string) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.UpdateDepartment")
	defer span.End()

	var department *types.Department

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		d, err := s.storage.LockDepartment(ctx, businessID, departmentID)
		if err != nil {
			return err
		}

		if d.PreventEdit {
			return types.ErrLocked
		}

		d.Name = name
		d.UpdatedByUserID = actorID

		if err := s.storage.UpdateDepartment(ctx, d); err != nil {
			return duplicateName(err, "department")
		}

		department = d
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to update department %d: %w", departmentID, err)
	}

	return department, nil
}

// DeleteDepartment removes a department together with its roles and their permissions.
// Any lock on the department or one of its roles, or any user holding one of its roles, stops the delete.
func (s *Service) DeleteDepartment(ctx context.Context, businessID, departmentID int64) error {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.DeleteDepartment")
	defer span.End()

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		d, err := s.storage.LockDepartment(ctx, businessID, departmentID)
		if err != nil {
			return err
		}

		if d.PreventDelete {
			return types.ErrLocked
		}

		roles, err := s.storage.LockDepartmentRoles(ctx, d.ID)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(roles))
		for _, r := range roles {
			if r.PreventDelete {
				return types.ErrLocked
			}
			ids = append(ids, r.ID)
		}

		if len(ids) > 0 {
			n, err := s.storage.CountUserRoles(ctx, ids)
			if err != nil {
				return err
			}

			if n > 0 {
				return types.ErrDependentsExist
			}
		}

		for _, r := range roles {
			if err := s.deleteRole(ctx, r); err != nil {
				return err
			}
		}

		return s.storage.DeleteDepartment(ctx, d.ID)
	})

	if err != nil {
		return fmt.Errorf("failed to delete department %d: %w", departmentID, err)
	}

	return nil
}

func (s *Service) ListRoles(ctx context.Context, businessID, departmentID int64) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.ListRoles")
	defer span.End()

	if _, err := s.storage.GetDepartment(ctx, businessID, departmentID); err != nil {
		return nil, err
	}

	return s.storage.ListRoles(ctx, businessID, departmentID)
}

func (s *Service) CreateRole(ctx context.Context, businessID, actorID, departmentID int64, spec *RoleSpec) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.CreateRole")
	defer span.End()

	if !spec.Access.Valid() {
		return nil, types.NewParamError("invalid value for access")
	}

	var role *types.Role

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		d, err := s.storage.GetDepartment(ctx, businessID, departmentID)
		if err != nil {
			return err
		}

		permissionID, err := s.storage.CreatePermission(ctx, spec.Capabilities)
		if err != nil {
			return err
		}

		role, err = s.storage.CreateRole(ctx, &types.Role{
			DepartmentID:    d.ID,
			Name:            spec.Name,
			Access:          spec.Access,
			PermissionID:    permissionID,
			Capabilities:    types.NewCapabilitySet(spec.Capabilities...),
			UpdatedByUserID: actorID,
		})

		return duplicateName(err, "role")
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return role, nil
}

// UpdateRole applies update to a role unless it is edit locked, even when update is empty
func (s *Service) UpdateRole(ctx context.Context, businessID, actorID, departmentID, roleID int64, update *RoleUpdate) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.UpdateRole")
	defer span.End()

	if update.Access != nil && !update.Access.Valid() {
		return nil, types.NewParamError("invalid value for access")
	}

	var role *types.Role

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.LockRole(ctx, businessID, departmentID, roleID)
		if err != nil {
			return err
		}

		if r.PreventEdit {
			return types.ErrLocked
		}

		if update.Name != nil {
			r.Name = *update.Name
		}
		if update.Access != nil {
			r.Access = *update.Access
		}
		r.UpdatedByUserID = actorID

		if err := s.storage.UpdateRole(ctx, r); err != nil {
			return duplicateName(err, "role")
		}

		if update.Capabilities != nil {
			if err := s.storage.ReplacePermissionCapabilities(ctx, r.PermissionID, update.Capabilities); err != nil {
				return err
			}
			r.Capabilities = types.NewCapabilitySet(update.Capabilities...)
		}

		role = r
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to update role %d: %w", roleID, err)
	}

	return role, nil
}

// DeleteRole removes a role and its permission once no user holds it
func (s *Service) DeleteRole(ctx context.Context, businessID, departmentID, roleID int64) error {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.DeleteRole")
	defer span.End()

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.LockRole(ctx, businessID, departmentID, roleID)
		if err != nil {
			return err
		}

		if r.PreventDelete {
			return types.ErrLocked
		}

		n, err := s.storage.CountUserRoles(ctx, []int64{r.ID})
		if err != nil {
			return err
		}

		if n > 0 {
			return types.ErrDependentsExist
		}

		return s.deleteRole(ctx, r)
	})

	if err != nil {
		return fmt.Errorf("failed to delete role %d: %w", roleID, err)
	}

	return nil
}

func (s *Service) deleteRole(ctx context.Context, r *types.Role) error {
	if err := s.storage.DeleteRole(ctx, r.ID); err != nil {
		return err
	}

	return s.storage.DeletePermission(ctx, r.PermissionID)
}

// AssignUser grants a role to a member of the business
func (s *Service) AssignUser(ctx context.Context, businessID, actorID, departmentID, roleID, userID int64, primary bool) (*types.UserRole, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.AssignUser")
	defer span.End()

	var userRole *types.UserRole

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.GetRole(ctx, businessID, departmentID, roleID)
		if err != nil {
			return err
		}

		if _, err := s.storage.GetMemberUser(ctx, businessID, userID); errors.Is(err, storage.ErrNotFound) {
			return types.NewParamError("user is not a member of this business")
		} else if err != nil {
			return err
		}

		userRole, err = s.storage.CreateUserRole(ctx, &types.UserRole{
			UserID:             userID,
			RoleID:             r.ID,
			PrimaryRoleForUser: primary,
			UpdatedByUserID:    actorID,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return types.NewParamError("user already holds this role")
		}

		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to assign role %d: %w", roleID, err)
	}

	return userRole, nil
}

func (s *Service) UnassignUser(ctx context.Context, businessID, departmentID, roleID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.UnassignUser")
	defer span.End()

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.GetRole(ctx, businessID, departmentID, roleID)
		if err != nil {
			return err
		}

		return s.storage.DeleteUserRole(ctx, userID, r.ID)
	})

	if err != nil {
		return fmt.Errorf("failed to unassign role %d: %w", roleID, err)
	}

	return nil
}

func duplicateName(err error, kind string) error {
	if errors.Is(err, storage.ErrDuplicateKey) {
		return types.NewParamError(kind + " name already in use")
	}
	return err
}
