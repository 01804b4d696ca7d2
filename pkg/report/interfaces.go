// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package report

import (
	"context"

	"github.com/canonical/surveillance-service/internal/types"
)

// StorageInterface is the subset of the storage layer this package uses.
type StorageInterface interface {
	CreateFarm(ctx context.Context, f *types.Farm) (*types.Farm, error)
	ListFarmsByOrganizationID(ctx context.Context, organizationID string) ([]*types.Farm, error)
	CreateReport(ctx context.Context, r *types.DiseaseReport) (*types.DiseaseReport, error)
	ListReportsByOrganizationID(ctx context.Context, organizationID string, page, size int64) ([]*types.DiseaseReport, error)
}

// AuthorizerInterface is the subset of the authorization guard this package uses.
type AuthorizerInterface interface {
	CanViewOrganization(ctx context.Context, userID, organizationID string) error
}

// ServiceInterface defines the farm and disease report operations.
type ServiceInterface interface {
	CreateFarm(ctx context.Context, userID string, farm *types.Farm) (*types.Farm, error)
	ListFarms(ctx context.Context, userID, organizationID string) ([]*types.Farm, error)
	CreateReport(ctx context.Context, userID string, report *types.DiseaseReport) (*types.DiseaseReport, error)
	ListReports(ctx context.Context, userID, organizationID string, page, size int64) ([]*types.DiseaseReport, error)
}
