// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"

	"github.com/canonical/surveillance-service/internal/types"
)

// StorageInterface is the subset of the storage layer this package uses.
type StorageInterface interface {
	GetMembership(ctx context.Context, organizationID, userID string) (*types.Membership, error)
	RemoveMember(ctx context.Context, organizationID, userID string) error
	PromoteMember(ctx context.Context, organizationID, userID string) error
	ClearHomeOrganization(ctx context.Context, userID, organizationID string) error
}

// AuthorizerInterface is the subset of the authorization guard this package uses.
type AuthorizerInterface interface {
	CanManageOrganization(ctx context.Context, userID, organizationID string) error
	RequireSuperAdmin(ctx context.Context, userID string) error
}

// ServiceInterface defines the membership mutation operations.
type ServiceInterface interface {
	DeleteMember(ctx context.Context, requesterID, targetUserID, organizationID string) error
	PromoteMember(ctx context.Context, requesterID, targetUserID, organizationID string) error
	AdminDeleteMember(ctx context.Context, requesterID, targetUserID, organizationID string) error
}
