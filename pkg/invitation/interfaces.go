// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"

	"github.com/canonical/surveillance-service/internal/types"
)

// StorageInterface is the subset of the storage layer this package uses.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, organizationID, email string) (*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error
	MarkInvitationAccepted(ctx context.Context, id string) error
	AddMember(ctx context.Context, organizationID, userID, role string) (string, error)
}

// IdentityProviderInterface is the identity provider lookup used to catch
// emails that already have an account upstream but no local user row yet.
type IdentityProviderInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}

// AuthorizerInterface is the subset of the authorization guard this package uses.
type AuthorizerInterface interface {
	CanManageOrganization(ctx context.Context, userID, organizationID string) error
}

// DispatcherInterface delivers invitation emails.
type DispatcherInterface interface {
	SendInvitationEmail(ctx context.Context, inv *types.Invitation, org *types.Organization, inviter *types.User) (DispatchResult, error)
}

// ServiceInterface defines the invitation operations.
type ServiceInterface interface {
	SendInvitation(ctx context.Context, requesterID, email, organizationID string) (*types.Invitation, error)
	AcceptInvitation(ctx context.Context, userID, invitationID string) (*types.Organization, error)
}
