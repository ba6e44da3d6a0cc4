// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"net/http"

	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/types"
	"github.com/canonical/business-service/pkg/authentication"
)

const userParam = "user_id"

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
	manage := []types.Capability{types.CapabilityGlobalCRUDUsers}

	return []httptypes.Route{
		{Method: http.MethodGet, Pattern: "/api/v0/users/{user_id}", RequireAuth: true, Permissions: manage, SelfParam: userParam, Handler: a.getUser},
		{Method: http.MethodPatch, Pattern: "/api/v0/users/{user_id}", RequireAuth: true, Permissions: manage, SelfParam: userParam, Handler: a.updateUser},
	}
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	userID, err := httptypes.IDParam(r, userParam)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	u, err := a.service.GetUser(r.Context(), s.CurrentBusinessID, userID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, u)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	userID, err := httptypes.IDParam(r, userParam)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	var req UpdateUserRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	u, err := a.service.UpdateUser(r.Context(), s.CurrentBusinessID, userID, req.Update())
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, u)
}
