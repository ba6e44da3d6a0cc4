// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"net/http"

	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/types"
	"github.com/canonical/business-service/pkg/authentication"
)

const (
	departmentParam = "department_id"
	roleParam       = "role_id"
	userParam       = "user_id"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) Routes() []httptypes.Route {
	crudDepartment := []types.Capability{types.CapabilityGlobalCRUDDepartment}
	crudRole := []types.Capability{types.CapabilityDeptCRUDRole}
	assignUsers := []types.Capability{types.CapabilityDeptAssignUsersToRole}

	return []httptypes.Route{
		{Method: http.MethodGet, Pattern: "/api/v0/departments", RequireAuth: true, Handler: a.listDepartments},
		{Method: http.MethodPost, Pattern: "/api/v0/departments", RequireAuth: true, Permissions: crudDepartment, Handler: a.createDepartment},
		{Method: http.MethodPatch, Pattern: "/api/v0/departments/{department_id}", RequireAuth: true, Permissions: crudDepartment, Handler: a.updateDepartment},
		{Method: http.MethodDelete, Pattern: "/api/v0/departments/{department_id}", RequireAuth: true, Permissions: crudDepartment, Handler: a.deleteDepartment},
		{Method: http.MethodGet, Pattern: "/api/v0/departments/{department_id}/roles", RequireAuth: true, Handler: a.listRoles},
		{
			Method:          http.MethodPost,
			Pattern:         "/api/v0/departments/{department_id}/roles",
			RequireAuth:     true,
			Permissions:     crudRole,
			DepartmentParam: departmentParam,
			Handler:         a.createRole,
		},
		{
			Method:          http.MethodPatch,
			Pattern:         "/api/v0/departments/{department_id}/roles/{role_id}",
			RequireAuth:     true,
			Permissions:     crudRole,
			DepartmentParam: departmentParam,
			Handler:         a.updateRole,
		},
		{
			Method:          http.MethodDelete,
			Pattern:         "/api/v0/departments/{department_id}/roles/{role_id}",
			RequireAuth:     true,
			Permissions:     crudRole,
			DepartmentParam: departmentParam,
			Handler:         a.deleteRole,
		},
		{
			Method:          http.MethodPost,
			Pattern:         "/api/v0/departments/{department_id}/roles/{role_id}/users",
			RequireAuth:     true,
			Permissions:     assignUsers,
			DepartmentParam: departmentParam,
			Handler:         a.assignUser,
		},
		{
			Method:          http.MethodDelete,
			Pattern:         "/api/v0/departments/{department_id}/roles/{role_id}/users/{user_id}",
			RequireAuth:     true,
			Permissions:     assignUsers,
			DepartmentParam: departmentParam,
			Handler:         a.unassignUser,
		},
	}
}

func (a *API) listDepartments(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departments, err := a.service.ListDepartments(r.Context(), s.CurrentBusinessID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, departments)
}

func (a *API) createDepartment(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	var req DepartmentRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	d, err := a.service.CreateDepartment(r.Context(), s.CurrentBusinessID, s.UserID, req.Name)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, d)
}

func (a *API) updateDepartment(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, err := httptypes.IDParam(r, departmentParam)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	var req DepartmentRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	d, err := a.service.UpdateDepartment(r.Context(), s.CurrentBusinessID, s.UserID, departmentID, req.Name)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, d)
}

func (a *API) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, err := httptypes.IDParam(r, departmentParam)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if err := a.service.DeleteDepartment(r.Context(), s.CurrentBusinessID, departmentID); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listRoles(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, err := httptypes.IDParam(r, departmentParam)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	roles, err := a.service.ListRoles(r.Context(), s.CurrentBusinessID, departmentID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, roles)
}

func (a *API) createRole(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, err := httptypes.IDParam(r, departmentParam)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	var req CreateRoleRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	caps, err := types.ParseCapabilities(req.Capabilities)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	role, err := a.service.CreateRole(r.Context(), s.CurrentBusinessID, s.UserID, departmentID, &RoleSpec{
		Name:         req.Name,
		Access:       types.Access(req.Access),
		Capabilities: caps,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, role)
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, roleID, err := roleParams(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	var req UpdateRoleRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	update := &RoleUpdate{Name: req.Name}

	if req.Access != nil {
		access := types.Access(*req.Access)
		update.Access = &access
	}

	if req.Capabilities != nil {
		caps, err := types.ParseCapabilities(req.Capabilities)
		if err != nil {
			httptypes.WriteError(w, a.logger, err)
			return
		}
		update.Capabilities = caps
	}

	role, err := a.service.UpdateRole(r.Context(), s.CurrentBusinessID, s.UserID, departmentID, roleID, update)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, role)
}

func (a *API) deleteRole(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, roleID, err := roleParams(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if err := a.service.DeleteRole(r.Context(), s.CurrentBusinessID, departmentID, roleID); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) assignUser(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, roleID, err := roleParams(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	var req AssignUserRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	ur, err := a.service.AssignUser(r.Context(), s.CurrentBusinessID, s.UserID, departmentID, roleID, req.UserID, req.Primary)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, ur)
}

func (a *API) unassignUser(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	departmentID, roleID, err := roleParams(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	userID, err := httptypes.IDParam(r, userParam)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if err := a.service.UnassignUser(r.Context(), s.CurrentBusinessID, departmentID, roleID, userID); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func roleParams(r *http.Request) (int64, int64, error) {
	departmentID, err := httptypes.IDParam(r, departmentParam)
	if err != nil {
		return 0, 0, err
	}

	roleID, err := httptypes.IDParam(r, roleParam)
	if err != nil {
		return 0, 0, err
	}

	return departmentID, roleID, nil
}
