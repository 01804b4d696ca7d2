// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/surveillance-service/internal/types"
)

// AuthorizerInterface is the single authorization guard consulted by every
// mutation handler. Decisions are pure given a membership snapshot.
type AuthorizerInterface interface {
	// CanManageOrganization allows organization admins and super-admins.
	CanManageOrganization(ctx context.Context, userID, organizationID string) error
	// CanViewOrganization allows any member of the organization and super-admins.
	CanViewOrganization(ctx context.Context, userID, organizationID string) error
	// RequireSuperAdmin allows only super-admins.
	RequireSuperAdmin(ctx context.Context, userID string) error
	// IsSuperAdmin reports whether the user holds the global super-admin role
	// or is in the configured privileged identity set.
	IsSuperAdmin(ctx context.Context, userID string) (bool, error)
}

// StorageInterface is the subset of the storage layer the guard reads from.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetMembership(ctx context.Context, organizationID, userID string) (*types.Membership, error)
}
