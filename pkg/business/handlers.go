// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"net/http"

	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/types"
	"github.com/canonical/business-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	sessions SessionManagerInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, sessions SessionManagerInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

func (a *API) Routes() []httptypes.Route {
	return []httptypes.Route{
		{Method: http.MethodPost, Pattern: "/api/v0/register", Handler: a.register},
		{Method: http.MethodGet, Pattern: "/api/v0/business", RequireAuth: true, Handler: a.currentBusiness},
	}
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	s, err := a.service.Register(r.Context(), req.Registration())
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	// the business exists at this point, a session failure only costs the caller a login
	if _, err := a.sessions.Create(r.Context(), w, s); err != nil {
		a.logger.Errorf("failed to open session after registration: %v", err)
	}

	httptypes.WriteJSON(w, http.StatusCreated, s)
}

func (a *API) currentBusiness(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	b, err := a.service.GetBusiness(r.Context(), s.CurrentBusinessID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, b)
}
