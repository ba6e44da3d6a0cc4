// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"net/http"
	"strconv"

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
		{Method: http.MethodPost, Pattern: "/api/v0/login", Handler: a.login},
		{Method: http.MethodPost, Pattern: "/api/v0/logout", RequireAuth: true, Handler: a.logout},
		{Method: http.MethodGet, Pattern: "/api/v0/me", RequireAuth: true, Handler: a.me},
		{Method: http.MethodPut, Pattern: "/api/v0/me/business", RequireAuth: true, Handler: a.switchBusiness},
		{Method: http.MethodPost, Pattern: "/api/v0/password/reset", Handler: a.resetPassword},
		{Method: http.MethodPost, Pattern: "/api/v0/password/forgot", Handler: a.forgotPassword},
	}
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	s, err := a.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, s); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, s)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	id, idOK := authentication.GetSessionID(r.Context())
	if !ok || !idOK {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	if err := a.sessions.Destroy(r.Context(), w, id); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	a.logger.Security().SessionDestroyed(strconv.FormatInt(s.UserID, 10))
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	profile, err := a.service.Me(r.Context(), s)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, profile)
}

func (a *API) switchBusiness(w http.ResponseWriter, r *http.Request) {
	s, ok := authentication.GetSession(r.Context())
	id, idOK := authentication.GetSessionID(r.Context())
	if !ok || !idOK {
		httptypes.WriteError(w, a.logger, types.ErrNotAuthenticated)
		return
	}

	var req SwitchBusinessRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	switched, err := a.service.SwitchBusiness(r.Context(), s, req.BusinessID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if err := a.sessions.Update(r.Context(), id, switched); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, switched)
}

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if err := a.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if err := a.service.ForgotPassword(r.Context(), req.Email); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
