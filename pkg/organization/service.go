// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/internal/types"
)

const shareCodeLength = 8

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

// CreateOrganization inserts the organization together with the creator's
// admin membership and points the creator's home organization at it.
func (s *Service) CreateOrganization(ctx context.Context, userID, name, description string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	org, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:        name,
		Description: description,
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	// Convenience pointer only; the membership row is the source of truth.
	if err := s.storage.SetHomeOrganization(ctx, userID, org.ID); err != nil {
		s.logger.Errorf("failed to set home organization for user %s: %v", userID, err)
	}

	s.logger.Infof("organization %s created by user %s", org.ID, userID)
	return org, nil
}

func (s *Service) ListOrganizations(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizations")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	return s.storage.ListOrganizationsByUserID(ctx, userID)
}

// JoinByShareCode validates the code locally, then performs the atomic
// code-lookup-plus-membership-insert at the storage layer. Codes of the wrong
// length never reach the store.
func (s *Service) JoinByShareCode(ctx context.Context, userID, shareCode string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.JoinByShareCode")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	shareCode = strings.ToUpper(strings.TrimSpace(shareCode))
	if len(shareCode) != shareCodeLength {
		return nil, types.ErrInvalidShareCode
	}

	org, err := s.storage.JoinByShareCode(ctx, shareCode, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("user %s joined organization %s via share code", userID, org.ID)
	return org, nil
}

func (s *Service) ListMembers(ctx context.Context, userID, organizationID string) ([]*types.OrganizationMember, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListMembers")
	defer span.End()

	if err := s.authz.CanViewOrganization(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	return s.storage.ListMembersByOrganizationID(ctx, organizationID)
}

// DeleteOrganization is a super-admin operation; memberships, invitations,
// farms and reports cascade at the database.
func (s *Service) DeleteOrganization(ctx context.Context, userID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.DeleteOrganization")
	defer span.End()

	if err := s.authz.RequireSuperAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.storage.DeleteOrganization(ctx, organizationID); err != nil {
		return err
	}

	s.logger.Infof("organization %s deleted by super admin %s", organizationID, userID)
	return nil
}
