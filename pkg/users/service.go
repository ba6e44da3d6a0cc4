// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"fmt"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
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

// GetUser returns the profile of a member of businessID, anyone else reads as not found
func (s *Service) GetUser(ctx context.Context, businessID, userID int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetUser")
	defer span.End()

	return s.storage.GetMemberUser(ctx, businessID, userID)
}

func (s *Service) UpdateUser(ctx context.Context, businessID, userID int64, update *Update) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.UpdateUser")
	defer span.End()

	var user *types.User

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		user, err = s.storage.GetMemberUser(ctx, businessID, userID)
		if err != nil {
			return err
		}

		var paths []string
		if update.FirstName != nil {
			user.FirstName = *update.FirstName
			paths = append(paths, "first_name")
		}
		if update.LastName != nil {
			user.LastName = *update.LastName
			paths = append(paths, "last_name")
		}
		if update.Phone != nil {
			user.Phone = *update.Phone
			paths = append(paths, "phone")
		}

		if len(paths) == 0 {
			return nil
		}

		return s.storage.UpdateUser(ctx, user, paths)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}

	s.logger.Debugf("updated user %d in business %d", userID, businessID)

	return user, nil
}
