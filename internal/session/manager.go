// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/token"
	"github.com/canonical/business-service/internal/tracing"
)

type Config struct {
	CookieName string
	Secure     bool
	Lifetime   time.Duration
}

// Manager ties the session store to the session cookie
type Manager struct {
	store StoreInterface

	cookieName string
	secure     bool
	lifetime   time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Load returns the cookie id and the stored payload of the request.
// A missing cookie, an unknown id and a store failure all yield a nil payload, failures are logged.
func (m *Manager) Load(ctx context.Context, r *http.Request) (string, Payload) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Load")
	defer span.End()

	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", nil
	}

	p, err := m.store.Load(ctx, c.Value)
	if err != nil {
		m.logger.Errorf("failed to load session: %v", err)
		return c.Value, nil
	}

	return c.Value, p
}

// Create stores s under a fresh id and sets the session cookie
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, s *Session) (string, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Create")
	defer span.End()

	id, err := token.Generate()
	if err != nil {
		return "", err
	}

	if err := m.store.Save(ctx, id, s.Payload(), m.lifetime); err != nil {
		return "", err
	}

	http.SetCookie(w, m.cookie(id, int(m.lifetime.Seconds())))

	return id, nil
}

// Update overwrites the payload stored under id, refreshing its lifetime
func (m *Manager) Update(ctx context.Context, id string, s *Session) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Update")
	defer span.End()

	return m.store.Save(ctx, id, s.Payload(), m.lifetime)
}

// Destroy deletes the stored session and expires the cookie.
// The cookie is left untouched when the store fails.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, id string) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Destroy")
	defer span.End()

	if id != "" {
		if err := m.store.Destroy(ctx, id); err != nil {
			return err
		}
	}

	http.SetCookie(w, m.cookie("", -1))

	return nil
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func NewManager(store StoreInterface, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Manager {
	m := new(Manager)

	m.store = store
	m.cookieName = cfg.CookieName
	m.secure = cfg.Secure
	m.lifetime = cfg.Lifetime

	if m.cookieName == "" {
		m.cookieName = "sid"
	}

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
