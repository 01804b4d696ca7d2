// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/surveillance-service/internal/types"
)

type StorageInterface interface {
	// Users
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	SetHomeOrganization(ctx context.Context, userID, organizationID string) error
	ClearHomeOrganization(ctx context.Context, userID, organizationID string) error

	// Organizations
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	JoinByShareCode(ctx context.Context, shareCode, userID string) (*types.Organization, error)

	// Memberships
	GetMembership(ctx context.Context, organizationID, userID string) (*types.Membership, error)
	ListMembersByOrganizationID(ctx context.Context, organizationID string) ([]*types.OrganizationMember, error)
	AddMember(ctx context.Context, organizationID, userID, role string) (string, error)
	RemoveMember(ctx context.Context, organizationID, userID string) error
	PromoteMember(ctx context.Context, organizationID, userID string) error

	// Invitations
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, organizationID, email string) (*types.Invitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error
	MarkInvitationAccepted(ctx context.Context, id string) error

	// Farms and disease reports
	CreateFarm(ctx context.Context, f *types.Farm) (*types.Farm, error)
	ListFarmsByOrganizationID(ctx context.Context, organizationID string) ([]*types.Farm, error)
	CreateReport(ctx context.Context, r *types.DiseaseReport) (*types.DiseaseReport, error)
	ListReportsByOrganizationID(ctx context.Context, organizationID string, page, size int64) ([]*types.DiseaseReport, error)
}
