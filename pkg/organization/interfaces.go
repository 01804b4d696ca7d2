// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/canonical/surveillance-service/internal/types"
)

// StorageInterface is the subset of the storage layer this package uses.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	JoinByShareCode(ctx context.Context, shareCode, userID string) (*types.Organization, error)
	ListMembersByOrganizationID(ctx context.Context, organizationID string) ([]*types.OrganizationMember, error)
	SetHomeOrganization(ctx context.Context, userID, organizationID string) error
}

// AuthorizerInterface is the subset of the authorization guard this package uses.
type AuthorizerInterface interface {
	CanViewOrganization(ctx context.Context, userID, organizationID string) error
	RequireSuperAdmin(ctx context.Context, userID string) error
}

// ServiceInterface defines the organization lifecycle operations.
type ServiceInterface interface {
	CreateOrganization(ctx context.Context, userID, name, description string) (*types.Organization, error)
	ListOrganizations(ctx context.Context, userID string) ([]*types.Organization, error)
	JoinByShareCode(ctx context.Context, userID, shareCode string) (*types.Organization, error)
	ListMembers(ctx context.Context, userID, organizationID string) ([]*types.OrganizationMember, error)
	DeleteOrganization(ctx context.Context, userID, organizationID string) error
}
