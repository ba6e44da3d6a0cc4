// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/notifier"
	"github.com/canonical/business-service/internal/storage"
	"github.com/canonical/business-service/internal/token"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	notifier NotifierInterface

	invitationLifetime    time.Duration
	passwordResetLifetime time.Duration
	now                   func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	notifier NotifierInterface,
	invitationLifetime time.Duration,
	passwordResetLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:               storage,
		notifier:              notifier,
		invitationLifetime:    invitationLifetime,
		passwordResetLifetime: passwordResetLifetime,
		now:                   time.Now,
		tracer:                tracer,
		monitor:               monitor,
		logger:                logger,
	}
}

// SendInvite invites email into businessID. Unknown emails get a user without password,
// a pending request for the same user is reissued with a new token and expiry.
// The notification goes out after commit and its failure only gets logged.
func (s *Service) SendInvite(ctx context.Context, businessID, inviterID int64, email string) (*types.MembershipRequest, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.SendInvite")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	var (
		business *types.Business
		invitee  *types.User
		request  *types.MembershipRequest
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		business, err = s.storage.GetBusiness(ctx, businessID)
		if err != nil {
			return err
		}

		invitee, err = s.findOrCreateUser(ctx, inviterID, email)
		if err != nil {
			return err
		}

		if _, err := s.storage.GetMembership(ctx, invitee.ID, businessID); err == nil {
			return types.ErrAlreadyMember
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		tok, err := token.Generate()
		if err != nil {
			return err
		}
		expiry := s.now().Add(s.invitationLifetime)

		existing, err := s.storage.LockMembershipRequest(ctx, invitee.ID, businessID)
		switch {
		case err == nil:
			if err := s.storage.RefreshMembershipRequest(ctx, existing.ID, tok, expiry, inviterID); err != nil {
				return err
			}

			existing.Token = tok
			existing.TokenExpiry = expiry
			existing.UpdatedByUserID = inviterID
			request = existing
		case errors.Is(err, storage.ErrNotFound):
			request, err = s.storage.CreateMembershipRequest(ctx, &types.MembershipRequest{
				BusinessID:      businessID,
				UserID:          invitee.ID,
				Token:           tok,
				TokenExpiry:     expiry,
				UpdatedByUserID: inviterID,
			})
			if err != nil {
				return err
			}
		default:
			return err
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to send invite: %w", err)
	}

	request.Email = invitee.Email

	invite := &notifier.Invite{
		BusinessID:   business.ID,
		BusinessName: business.Name,
		Token:        request.Token,
		InviterID:    inviterID,
		InviteeID:    invitee.ID,
		InviteeEmail: invitee.Email,
		ExpiresAt:    request.TokenExpiry,
	}

	if err := s.notifier.SendInvite(ctx, invite); err != nil {
		s.logger.Errorf("failed to notify invite %d: %v", request.ID, err)
	}

	return request, nil
}

func (s *Service) findOrCreateUser(ctx context.Context, actorID int64, email string) (*types.User, error) {
	user, err := s.storage.LockUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	user, err = s.storage.CreateInvitedUser(ctx, email)
	if errors.Is(err, storage.ErrDuplicateKey) {
		// a concurrent invite created the user after our lookup
		return s.storage.LockUserByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Security().UserCreated(strconv.FormatInt(actorID, 10), strconv.FormatInt(user.ID, 10))

	return user, nil
}

// AcceptInvite redeems an invite token. The first membership of a user becomes the default one.
// A user without password receives a password reset token to complete registration.
func (s *Service) AcceptInvite(ctx context.Context, tok string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.AcceptInvite")
	defer span.End()

	if tok == "" {
		return nil, types.ErrTokenInvalidOrExpired
	}

	var (
		membership *types.Membership
		reset      *notifier.PasswordReset
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		request, err := s.storage.LockMembershipRequestByToken(ctx, tok)
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrTokenInvalidOrExpired
		}
		if err != nil {
			return err
		}

		now := s.now()
		if request.Expired(now) {
			return types.ErrTokenInvalidOrExpired
		}

		user, err := s.storage.LockUser(ctx, request.UserID)
		if err != nil {
			return err
		}

		count, err := s.storage.CountMemberships(ctx, user.ID)
		if err != nil {
			return err
		}

		membership, err = s.storage.CreateMembership(ctx, &types.Membership{
			UserID:     user.ID,
			BusinessID: request.BusinessID,
			IsDefault:  count == 0,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return types.ErrAlreadyMember
		}
		if err != nil {
			return err
		}

		if err := s.storage.DeleteMembershipRequest(ctx, request.ID); err != nil {
			return err
		}

		if user.HasPassword() {
			return nil
		}

		resetToken, err := token.Generate()
		if err != nil {
			return err
		}

		reset = &notifier.PasswordReset{
			UserID:    user.ID,
			Email:     user.Email,
			Token:     resetToken,
			ExpiresAt: now.Add(s.passwordResetLifetime),
		}

		return s.storage.SetUserToken(ctx, user.ID, reset.Token, reset.ExpiresAt)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}

	s.logger.Security().MembershipGranted(strconv.FormatInt(membership.UserID, 10), strconv.FormatInt(membership.BusinessID, 10))

	if reset != nil {
		if err := s.notifier.SendPasswordReset(ctx, reset); err != nil {
			s.logger.Errorf("failed to notify password reset for user %d: %v", reset.UserID, err)
		}
	}

	return membership, nil
}

func (s *Service) ListInvites(ctx context.Context, businessID int64) ([]*types.MembershipRequest, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListInvites")
	defer span.End()

	return s.storage.ListMembershipRequests(ctx, businessID)
}
