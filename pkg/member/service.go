// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// DeleteMember removes the target's membership. Self-removal is rejected
// regardless of role, and the storage layer refuses to delete the
// organization's last admin.
func (s *Service) DeleteMember(ctx context.Context, requesterID, targetUserID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "member.Service.DeleteMember")
	defer span.End()

	if err := s.authz.CanManageOrganization(ctx, requesterID, organizationID); err != nil {
		return err
	}

	return s.removeMember(ctx, requesterID, targetUserID, organizationID)
}

// AdminDeleteMember is DeleteMember behind the super-admin guard instead of
// the organization-admin guard.
func (s *Service) AdminDeleteMember(ctx context.Context, requesterID, targetUserID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "member.Service.AdminDeleteMember")
	defer span.End()

	if err := s.authz.RequireSuperAdmin(ctx, requesterID); err != nil {
		return err
	}

	return s.removeMember(ctx, requesterID, targetUserID, organizationID)
}

func (s *Service) removeMember(ctx context.Context, requesterID, targetUserID, organizationID string) error {
	if targetUserID == requesterID {
		return types.ErrCannotRemoveSelf
	}

	if _, err := s.storage.GetMembership(ctx, organizationID, targetUserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotAMember
		}
		return err
	}

	if err := s.storage.RemoveMember(ctx, organizationID, targetUserID); err != nil {
		if errors.Is(err, storage.ErrLastAdminProtected) {
			return types.ErrLastAdmin
		}
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotAMember
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	// The membership row is authoritative; a stale home-organization pointer
	// is a cosmetic inconsistency, so this failure is logged and ignored.
	if err := s.storage.ClearHomeOrganization(ctx, targetUserID, organizationID); err != nil {
		s.logger.Errorf("failed to clear home organization for user %s: %v", targetUserID, err)
	}

	s.logger.Infof("user %s removed from organization %s by %s", targetUserID, organizationID, requesterID)
	return nil
}

// PromoteMember sets the target's role to admin. Promotion only increases the
// admin count, so no invariant check is needed.
func (s *Service) PromoteMember(ctx context.Context, requesterID, targetUserID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "member.Service.PromoteMember")
	defer span.End()

	if err := s.authz.CanManageOrganization(ctx, requesterID, organizationID); err != nil {
		return err
	}

	membership, err := s.storage.GetMembership(ctx, organizationID, targetUserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotAMember
		}
		return err
	}

	if membership.Role == types.RoleAdmin {
		return types.ErrAlreadyAdmin
	}

	if err := s.storage.PromoteMember(ctx, organizationID, targetUserID); err != nil {
		return fmt.Errorf("failed to promote member: %w", err)
	}

	s.logger.Infof("user %s promoted to admin in organization %s by %s", targetUserID, organizationID, requesterID)
	return nil
}
