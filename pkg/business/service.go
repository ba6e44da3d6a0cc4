// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/storage"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/types"
)

type Service struct {
	storage   StorageInterface
	passwords PasswordHasherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, passwords PasswordHasherInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage:   storage,
		passwords: passwords,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Register creates the business, its locked Admin department and General role, and the
// administrator holding that role, all in one transaction. An invited user who never set a
// password completes their registration here.
func (s *Service) Register(ctx context.Context, r *Registration) (*session.Session, error) {
	ctx, span := s.tracer.Start(ctx, "business.Service.Register")
	defer span.End()

	hash, err := s.passwords.Hash(r.Password)
	if err != nil {
		return nil, types.NewParamError("invalid value for password")
	}

	var (
		user     *types.User
		business *types.Business
		created  bool
		sess     *session.Session
	)

	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		user, created, err = s.registerUser(ctx, r, hash)
		if err != nil {
			return err
		}

		business, err = s.storage.CreateBusiness(ctx, &r.Business)
		if errors.Is(err, storage.ErrDuplicateKey) {
			return types.NewParamError("business name already registered")
		}
		if err != nil {
			return err
		}

		department, err := s.storage.CreateDepartment(ctx, &types.Department{
			BusinessID:      business.ID,
			Name:            adminDepartmentName,
			PreventEdit:     true,
			PreventDelete:   true,
			UpdatedByUserID: user.ID,
		})
		if err != nil {
			return err
		}

		permissionID, err := s.storage.CreatePermission(ctx, types.AllCapabilities())
		if err != nil {
			return err
		}

		count, err := s.storage.CountMemberships(ctx, user.ID)
		if err != nil {
			return err
		}

		if _, err := s.storage.CreateMembership(ctx, &types.Membership{
			UserID:        user.ID,
			BusinessID:    business.ID,
			IsDefault:     count == 0,
			PreventDelete: true,
		}); err != nil {
			return err
		}

		role, err := s.storage.CreateRole(ctx, &types.Role{
			DepartmentID:    department.ID,
			Name:            adminRoleName,
			Access:          types.AccessAdmin,
			PermissionID:    permissionID,
			PreventEdit:     true,
			PreventDelete:   true,
			UpdatedByUserID: user.ID,
		})
		if err != nil {
			return err
		}

		if _, err := s.storage.CreateUserRole(ctx, &types.UserRole{
			UserID:             user.ID,
			RoleID:             role.ID,
			PrimaryRoleForUser: true,
			UpdatedByUserID:    user.ID,
		}); err != nil {
			return err
		}

		memberships, err := s.storage.ListMemberships(ctx, user.ID)
		if err != nil {
			return err
		}

		sess = &session.Session{UserID: user.ID, CurrentBusinessID: business.ID}
		for _, m := range memberships {
			sess.BusinessIDs = append(sess.BusinessIDs, m.BusinessID)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to register business: %w", err)
	}

	uid := strconv.FormatInt(user.ID, 10)
	if created {
		s.logger.Security().UserCreated(uid, uid)
	}
	s.logger.Security().MembershipGranted(uid, strconv.FormatInt(business.ID, 10))

	return sess, nil
}

// registerUser creates the user or completes a passwordless invited one, reporting whether it was created
func (s *Service) registerUser(ctx context.Context, r *Registration, hash string) (*types.User, bool, error) {
	user, err := s.storage.LockUserByEmail(ctx, r.Email)

	switch {
	case errors.Is(err, storage.ErrNotFound):
		user, err = s.storage.CreateUser(ctx, &types.User{
			Email:        r.Email,
			PasswordHash: hash,
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			Phone:        r.Phone,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, false, types.NewParamError("email already registered")
		}
		return user, err == nil, err
	case err != nil:
		return nil, false, err
	case user.HasPassword():
		return nil, false, types.NewParamError("email already registered")
	}

	user.FirstName = r.FirstName
	user.LastName = r.LastName
	user.Phone = r.Phone

	if err := s.storage.UpdateUser(ctx, user, []string{"first_name", "last_name", "phone"}); err != nil {
		return nil, false, err
	}

	if err := s.storage.SetUserPassword(ctx, user.ID, hash); err != nil {
		return nil, false, err
	}

	user.PasswordHash = hash

	return user, false, nil
}

func (s *Service) GetBusiness(ctx context.Context, businessID int64) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "business.Service.GetBusiness")
	defer span.End()

	return s.storage.GetBusiness(ctx, businessID)
}
