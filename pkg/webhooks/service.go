// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

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
	storage StorageInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration provisions the local user row after the identity
// provider completes a signup. If a pending invitation exists for the email,
// the signup consumes it and the user lands directly in the inviting
// organization as a member.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email, fullName string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.storage.CreateUser(ctx, &types.User{
		ID:       identityID,
		Email:    email,
		FullName: fullName,
		Role:     types.RoleMember,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Registration webhooks can be redelivered.
			s.logger.Debugf("user %s already provisioned", identityID)
			return nil
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	inv, err := s.storage.GetPendingInvitationByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up pending invitation: %w", err)
	}

	if inv.ExpiresAt.Before(s.now()) {
		s.logger.Debugf("pending invitation %s for %s is expired, ignoring", inv.ID, email)
		return nil
	}

	if _, err := s.storage.AddMember(ctx, inv.OrganizationID, user.ID, types.RoleMember); err != nil {
		return fmt.Errorf("failed to add invited member: %w", err)
	}

	if err := s.storage.MarkInvitationAccepted(ctx, inv.ID); err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	if err := s.storage.SetHomeOrganization(ctx, user.ID, inv.OrganizationID); err != nil {
		s.logger.Errorf("failed to set home organization for user %s: %v", user.ID, err)
	}

	s.logger.Infof("user %s joined organization %s via invitation %s at signup", user.ID, inv.OrganizationID, inv.ID)
	return nil
}
