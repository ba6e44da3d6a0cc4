// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"net/http"

	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/types"
	"github.com/canonical/business-service/pkg/authentication"
)

type SendInviteRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required,max=128"`
}

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
	return []httptypes.Route{
		{
			Method:      http.MethodPost,
			Pattern:     "/api/v0/invites",
			RequireAuth: true,
			Permissions: []types.Capability{types.CapabilityGlobalCRUDUsers},
			Handler:     a.sendInvite,
		},
		{
			Method:      http.MethodGet,
			Pattern:     "/api/v0/invites",
			RequireAuth: true,
			Permissions: []types.Capability{types.CapabilityGlobalCRUDUsers},
			Handler:     a.listInvites,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/api/v0/invites/accept",
			Handler: a.acceptInvite,
		},
	}
}

func (a *API) sendInvite(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	var req SendInviteRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	invite, err := a.service.SendInvite(r.Context(), s.CurrentBusinessID, s.UserID, req.Email)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, invite)
}

func (a *API) listInvites(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	invites, err := a.service.ListInvites(r.Context(), s.CurrentBusinessID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, invites)
}

func (a *API) acceptInvite(w http.ResponseWriter, r *http.Request) {
	var req AcceptInviteRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	m, err := a.service.AcceptInvite(r.Context(), req.Token)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, m)
}
