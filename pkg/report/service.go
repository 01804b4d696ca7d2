// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package report

import (
	"context"
	"math"

	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
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

func (s *Service) CreateFarm(ctx context.Context, userID string, farm *types.Farm) (*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.CreateFarm")
	defer span.End()

	if err := s.authz.CanViewOrganization(ctx, userID, farm.OrganizationID); err != nil {
		return nil, err
	}

	return s.storage.CreateFarm(ctx, farm)
}

func (s *Service) ListFarms(ctx context.Context, userID, organizationID string) ([]*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.ListFarms")
	defer span.End()

	if err := s.authz.CanViewOrganization(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	return s.storage.ListFarmsByOrganizationID(ctx, organizationID)
}

// CreateReport persists the report with its derived morbidity and mortality
// rates. Rates stay nil when the total population is unknown or zero.
func (s *Service) CreateReport(ctx context.Context, userID string, report *types.DiseaseReport) (*types.DiseaseReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.CreateReport")
	defer span.End()

	if err := s.authz.CanViewOrganization(ctx, userID, report.OrganizationID); err != nil {
		return nil, err
	}

	report.CreatedBy = userID
	report.MorbidityRate = deriveRate(report.SickCount, report.TotalPopulation)
	report.MortalityRate = deriveRate(report.DeathCount, report.TotalPopulation)

	return s.storage.CreateReport(ctx, report)
}

func (s *Service) ListReports(ctx context.Context, userID, organizationID string, page, size int64) ([]*types.DiseaseReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.ListReports")
	defer span.End()

	if err := s.authz.CanViewOrganization(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	return s.storage.ListReportsByOrganizationID(ctx, organizationID, page, size)
}

// deriveRate returns count/total as a percentage rounded to two decimals.
func deriveRate(count, total *int64) *float64 {
	if count == nil || total == nil || *total == 0 {
		return nil
	}

	rate := math.Round(float64(*count)/float64(*total)*100*100) / 100
	return &rate
}
