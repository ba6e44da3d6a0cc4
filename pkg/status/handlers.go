// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Version      string          `json:"version"`
	Dependencies map[string]bool `json:"dependencies"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	status := Status{
		Version:      version.Version,
		Dependencies: make(map[string]bool, len(a.dependencies)),
	}
	code := http.StatusOK

	for name, dep := range a.dependencies {
		available := a.ping(ctx, name, dep)
		status.Dependencies[name] = available

		if !available {
			code = http.StatusServiceUnavailable
		}
	}

	httptypes.WriteJSON(w, code, status)
}

func (a *API) ping(ctx context.Context, name string, dep PingerInterface) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	value := 1.0
	err := dep.Ping(ctx)
	if err != nil {
		a.logger.Errorf("dependency %s is not available: %v", name, err)
		value = 0
	}

	if merr := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, value); merr != nil {
		a.logger.Debugf("error setting dependency availability metric: %v", merr)
	}

	return err == nil
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
