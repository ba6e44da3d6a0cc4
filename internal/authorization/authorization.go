// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer resolves capabilities from the roles a user holds through user_roles
type Authorizer struct {
	store GrantStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) CheckPermission(ctx context.Context, userID, businessID int64, required []types.Capability) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckPermission")
	defer span.End()

	return a.check(ctx, userID, businessID, noDepartment, required)
}

func (a *Authorizer) CheckDepartmentPermission(ctx context.Context, userID, businessID, departmentID int64, required []types.Capability) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckDepartmentPermission")
	defer span.End()

	return a.check(ctx, userID, businessID, departmentID, required)
}

func (a *Authorizer) IsAdmin(ctx context.Context, businessID, userID int64) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsAdmin")
	defer span.End()

	grants, err := a.grants(ctx, userID, businessID)
	if err != nil {
		return false, err
	}

	return hasAccess(grants, types.AccessAdmin), nil
}

func (a *Authorizer) IsManager(ctx context.Context, businessID, userID int64) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsManager")
	defer span.End()

	grants, err := a.grants(ctx, userID, businessID)
	if err != nil {
		return false, err
	}

	return hasAccess(grants, types.AccessManager), nil
}

func (a *Authorizer) check(ctx context.Context, userID, businessID, departmentID int64, required []types.Capability) (bool, error) {
	if len(required) == 0 {
		return true, nil
	}

	grants, err := a.grants(ctx, userID, businessID)
	if err != nil {
		return false, err
	}

	allowed := resolve(grants, required, departmentID)
	if !allowed {
		a.logger.Debugf("user %d denied %v in business %d", userID, required, businessID)
	}

	return allowed, nil
}

func (a *Authorizer) grants(ctx context.Context, userID, businessID int64) ([]*types.RoleGrant, error) {
	grants, err := a.store.ListUserRoleGrants(ctx, userID, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load role grants: %w", err)
	}

	return grants, nil
}

func NewAuthorizer(store GrantStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.store = store
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
