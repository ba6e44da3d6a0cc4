// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/notifier"
	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/storage"
	"github.com/canonical/business-service/internal/token"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/types"
)

type Service struct {
	storage    StorageInterface
	authorizer AuthorizerInterface
	notifier   NotifierInterface
	passwords  PasswordHasherInterface

	passwordResetLifetime time.Duration
	now                   func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authorizer AuthorizerInterface,
	notifier NotifierInterface,
	passwords PasswordHasherInterface,
	passwordResetLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:               storage,
		authorizer:            authorizer,
		notifier:              notifier,
		passwords:             passwords,
		passwordResetLifetime: passwordResetLifetime,
		now:                   time.Now,
		tracer:                tracer,
		monitor:               monitor,
		logger:                logger,
	}
}

// Login checks the credentials and returns the session to open, logged in to the default business.
// Unknown emails, users who never set a password and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Session, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Login")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().AuthnLoginFail("")
		return nil, types.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	uid := strconv.FormatInt(user.ID, 10)

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		s.logger.Security().AuthnLoginFail(uid)
		return nil, types.ErrInvalidCredentials
	}

	memberships, err := s.storage.ListMemberships(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if len(memberships) == 0 {
		s.logger.Security().AuthnLoginFail(uid)
		return nil, types.ErrInvalidCredentials
	}

	sess := &session.Session{
		UserID:            user.ID,
		CurrentBusinessID: memberships[0].BusinessID,
		BusinessIDs:       make([]int64, 0, len(memberships)),
	}

	for _, m := range memberships {
		sess.BusinessIDs = append(sess.BusinessIDs, m.BusinessID)
		if m.IsDefault {
			sess.CurrentBusinessID = m.BusinessID
		}
	}

	s.logger.Security().AuthnLoginSuccess(uid)

	return sess, nil
}

func (s *Service) Me(ctx context.Context, sess *session.Session) (*Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Me")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	business, err := s.storage.GetBusiness(ctx, sess.CurrentBusinessID)
	if err != nil {
		return nil, err
	}

	isAdmin, err := s.authorizer.IsAdmin(ctx, sess.CurrentBusinessID, sess.UserID)
	if err != nil {
		return nil, err
	}

	isManager, err := s.authorizer.IsManager(ctx, sess.CurrentBusinessID, sess.UserID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:        user,
		Business:    business,
		BusinessIDs: sess.BusinessIDs,
		IsAdmin:     isAdmin,
		IsManager:   isManager,
	}, nil
}

// SwitchBusiness moves the session to another business the user was logged in with.
// The membership is checked again since it may have gone since login.
func (s *Service) SwitchBusiness(ctx context.Context, sess *session.Session, businessID int64) (*session.Session, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.SwitchBusiness")
	defer span.End()

	if !sess.HasBusiness(businessID) {
		return nil, types.ErrPermissions
	}

	if _, err := s.storage.GetMembership(ctx, sess.UserID, businessID); errors.Is(err, storage.ErrNotFound) {
		return nil, types.ErrPermissions
	} else if err != nil {
		return nil, err
	}

	switched := *sess
	switched.CurrentBusinessID = businessID

	return &switched, nil
}

// ResetPassword redeems a reset token, the token is consumed with the password change
func (s *Service) ResetPassword(ctx context.Context, tok, password string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.ResetPassword")
	defer span.End()

	if tok == "" {
		return types.ErrResetTokenInvalid
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.storage.LockUserByToken(ctx, tok)
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrResetTokenInvalid
		}
		if err != nil {
			return err
		}

		if user.TokenExpiry == nil || !s.now().Before(*user.TokenExpiry) {
			return types.ErrResetTokenInvalid
		}

		hash, err := s.passwords.Hash(password)
		if err != nil {
			return err
		}

		return s.storage.SetUserPassword(ctx, user.ID, hash)
	})

	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

// ForgotPassword issues a reset token for a known email. Unknown emails are ignored silently.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.ForgotPassword")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debugf("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	tok, err := token.Generate()
	if err != nil {
		return err
	}

	reset := &notifier.PasswordReset{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     tok,
		ExpiresAt: s.now().Add(s.passwordResetLifetime),
	}

	if err := s.storage.SetUserToken(ctx, user.ID, reset.Token, reset.ExpiresAt); err != nil {
		return err
	}

	if err := s.notifier.SendPasswordReset(ctx, reset); err != nil {
		s.logger.Errorf("failed to notify password reset for user %d: %v", user.ID, err)
	}

	return nil
}
