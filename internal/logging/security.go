// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup     = "sys_startup"
	eventSystemShutdown    = "sys_shutdown"
	eventLoginSuccess      = "authn_login_success"
	eventLoginFail         = "authn_login_fail"
	eventAuthzFail         = "authz_fail"
	eventSessionDestroyed  = "session_destroyed"
	eventUserCreated       = "user_created"
	eventMembershipGranted = "membership_granted"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, description string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("event", name), zap.String("type", "security")}, fields...)
	s.l.Warn(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event(eventSystemStartup, "business service is starting")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event(eventSystemShutdown, "business service is shutting down")
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.event(eventLoginSuccess, "user logged in", zap.String("user_id", userID))
}

func (s *SecurityLogger) AuthnLoginFail(userID string) {
	s.event(eventLoginFail, "user failed to log in", zap.String("user_id", userID))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.event(eventAuthzFail, "user attempted to access a resource without entitlement", zap.String("user_id", userID), zap.String("resource", resource))
}

func (s *SecurityLogger) SessionDestroyed(userID string) {
	s.event(eventSessionDestroyed, "session destroyed", zap.String("user_id", userID))
}

func (s *SecurityLogger) UserCreated(actorID, userID string) {
	s.event(eventUserCreated, "user created", zap.String("actor_id", actorID), zap.String("user_id", userID))
}

func (s *SecurityLogger) MembershipGranted(userID, businessID string) {
	s.event(eventMembershipGranted, "user admitted into business", zap.String("user_id", userID), zap.String("business_id", businessID))
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
