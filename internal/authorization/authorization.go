// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	storage StorageInterface

	// superAdmins is the configuration-supplied set of privileged email
	// addresses, lowercased at construction.
	superAdmins map[string]struct{}

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(
	s StorageInterface,
	superAdminEmails []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authorizer {
	a := new(Authorizer)

	a.storage = s
	a.superAdmins = make(map[string]struct{}, len(superAdminEmails))
	for _, email := range superAdminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			a.superAdmins[email] = struct{}{}
		}
	}

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *Authorizer) IsSuperAdmin(ctx context.Context, userID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsSuperAdmin")
	defer span.End()

	user, err := a.resolveUser(ctx, userID)
	if err != nil {
		return false, err
	}

	return a.isSuperAdmin(user), nil
}

func (a *Authorizer) RequireSuperAdmin(ctx context.Context, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireSuperAdmin")
	defer span.End()

	user, err := a.resolveUser(ctx, userID)
	if err != nil {
		return err
	}

	if !a.isSuperAdmin(user) {
		a.logger.Security().AuthzFailure(userID, "super_admin")
		return fmt.Errorf("super admin access required: %w", types.ErrForbidden)
	}

	return nil
}

func (a *Authorizer) CanManageOrganization(ctx context.Context, userID, organizationID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageOrganization")
	defer span.End()

	return a.checkOrganizationRole(ctx, userID, organizationID, types.RoleAdmin)
}

func (a *Authorizer) CanViewOrganization(ctx context.Context, userID, organizationID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanViewOrganization")
	defer span.End()

	return a.checkOrganizationRole(ctx, userID, organizationID, types.RoleMember)
}

func (a *Authorizer) checkOrganizationRole(ctx context.Context, userID, organizationID, requiredRole string) error {
	user, err := a.resolveUser(ctx, userID)
	if err != nil {
		return err
	}

	if a.isSuperAdmin(user) {
		return nil
	}

	// The target organization must exist regardless of the caller's role.
	if _, err := a.storage.GetOrganizationByID(ctx, organizationID); err != nil {
		return err
	}

	membership, err := a.storage.GetMembership(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Security().AuthzFailure(userID, "organization:"+organizationID)
			return fmt.Errorf("no membership in organization %s: %w", organizationID, types.ErrForbidden)
		}
		return err
	}

	if requiredRole == types.RoleAdmin && membership.Role != types.RoleAdmin {
		a.logger.Security().AuthzFailure(userID, "organization:"+organizationID)
		return fmt.Errorf("role %q insufficient for organization %s: %w", membership.Role, organizationID, types.ErrForbidden)
	}

	return nil
}

func (a *Authorizer) resolveUser(ctx context.Context, userID string) (*types.User, error) {
	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	user, err := a.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("unknown identity %s: %w", userID, types.ErrUnauthenticated)
		}
		return nil, err
	}

	return user, nil
}

func (a *Authorizer) isSuperAdmin(user *types.User) bool {
	if user.Role == types.RoleSuperAdmin {
		return true
	}

	_, ok := a.superAdmins[strings.ToLower(user.Email)]
	return ok
}
