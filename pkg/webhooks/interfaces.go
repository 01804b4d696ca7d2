// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/surveillance-service/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	AddMember(ctx context.Context, organizationID, userID, role string) (string, error)
	MarkInvitationAccepted(ctx context.Context, id string) error
	SetHomeOrganization(ctx context.Context, userID, organizationID string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email, fullName string) error
}
