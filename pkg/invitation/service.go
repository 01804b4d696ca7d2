// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	authz      AuthorizerInterface
	dispatcher DispatcherInterface
	identities IdentityProviderInterface

	lifetime time.Duration
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	dispatcher DispatcherInterface,
	identities IdentityProviderInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		authz:      authz,
		dispatcher: dispatcher,
		identities: identities,
		lifetime:   lifetime,
		now:        time.Now,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// SendInvitation is a two-phase operation: the invitation row is created
// first, then the email is dispatched. A dispatch failure in standard mode
// triggers the compensating deletion of the row, so from the caller's point
// of view creation and delivery succeed or fail together.
func (s *Service) SendInvitation(ctx context.Context, requesterID, email, organizationID string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.SendInvitation")
	defer span.End()

	if err := s.authz.CanManageOrganization(ctx, requesterID, organizationID); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, types.ErrUserExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	// An upstream identity without a local row still counts as an existing
	// user; the signup webhook will provision the row on next login.
	if s.identities != nil {
		identityID, err := s.identities.GetIdentityIDByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("identity provider lookup failed: %w", err)
		}
		if identityID != "" {
			return nil, types.ErrUserExists
		}
	}

	if existing, err := s.storage.GetPendingInvitation(ctx, organizationID, email); err == nil {
		if existing.ExpiresAt.After(s.now()) {
			return nil, types.ErrInvitationAlreadySent
		}
		// A stale pending invitation no longer blocks; the new one
		// supersedes it.
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	inv, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		OrganizationID: organizationID,
		Email:          email,
		InvitedBy:      requesterID,
		ExpiresAt:      s.now().Add(s.lifetime),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	org, err := s.storage.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	inviter, err := s.storage.GetUserByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	result, err := s.dispatcher.SendInvitationEmail(ctx, inv, org, inviter)
	if err != nil {
		// Compensating deletion: the invitation must not outlive a failed
		// dispatch in standard mode.
		if delErr := s.storage.DeleteInvitation(ctx, inv.ID); delErr != nil {
			s.logger.Errorf("failed to delete invitation %s after dispatch failure: %v", inv.ID, delErr)
		}
		return nil, fmt.Errorf("invitation email dispatch failed: %w", err)
	}

	s.logger.Infof("invitation %s for %s in organization %s: %s", inv.ID, email, organizationID, result)
	return inv, nil
}

// AcceptInvitation turns a pending, unexpired invitation into a member-role
// membership for the caller.
func (s *Service) AcceptInvitation(ctx context.Context, userID, invitationID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.AcceptInvitation")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	inv, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	if inv.Status != types.InvitationPending {
		return nil, types.ErrInvitationNotPending
	}
	if inv.ExpiresAt.Before(s.now()) {
		return nil, types.ErrInvitationExpired
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(user.Email, inv.Email) {
		return nil, fmt.Errorf("invitation was issued to a different email: %w", types.ErrForbidden)
	}

	if _, err := s.storage.AddMember(ctx, inv.OrganizationID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	if err := s.storage.MarkInvitationAccepted(ctx, inv.ID); err != nil {
		return nil, err
	}

	org, err := s.storage.GetOrganizationByID(ctx, inv.OrganizationID)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("user %s accepted invitation %s to organization %s", userID, inv.ID, org.ID)
	return org, nil
}
