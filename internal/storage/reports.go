// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/surveillance-service/internal/db"
	"github.com/canonical/surveillance-service/internal/types"
	"github.com/google/uuid"
)

func (s *Storage) CreateFarm(ctx context.Context, f *types.Farm) (*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateFarm")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate farm ID: %w", err)
	}

	var created types.Farm
	err = s.db.Statement(ctx).
		Insert("farms").
		Columns("id", "organization_id", "name", "location", "latitude", "longitude", "animal_type").
		Values(id.String(), f.OrganizationID, f.Name, f.Location, f.Latitude, f.Longitude, f.AnimalType).
		Suffix("RETURNING id, organization_id, name, location, latitude, longitude, animal_type, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrganizationID, &created.Name, &created.Location, &created.Latitude, &created.Longitude, &created.AnimalType, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert farm: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListFarmsByOrganizationID(ctx context.Context, organizationID string) ([]*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFarmsByOrganizationID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "organization_id", "name", "location", "latitude", "longitude", "animal_type", "created_at").
		From("farms").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	defer rows.Close()

	var farms []*types.Farm
	for rows.Next() {
		var f types.Farm
		if err := rows.Scan(&f.ID, &f.OrganizationID, &f.Name, &f.Location, &f.Latitude, &f.Longitude, &f.AnimalType, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan farm: %w", err)
		}
		farms = append(farms, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return farms, nil
}

func (s *Storage) CreateReport(ctx context.Context, r *types.DiseaseReport) (*types.DiseaseReport, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateReport")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report ID: %w", err)
	}

	var created types.DiseaseReport
	err = s.db.Statement(ctx).
		Insert("disease_reports").
		Columns(
			"id", "organization_id", "farm_id", "created_by",
			"animal_species", "disease_name", "severity", "onset_date",
			"total_population", "sick_count", "death_count",
			"morbidity_rate", "mortality_rate", "notes",
		).
		Values(
			id.String(), r.OrganizationID, r.FarmID, r.CreatedBy,
			r.AnimalSpecies, r.DiseaseName, r.Severity, r.OnsetDate,
			r.TotalPopulation, r.SickCount, r.DeathCount,
			r.MorbidityRate, r.MortalityRate, r.Notes,
		).
		Suffix("RETURNING " + reportColumns).
		QueryRowContext(ctx).
		Scan(reportScanDest(&created)...)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListReportsByOrganizationID(ctx context.Context, organizationID string, page, size int64) ([]*types.DiseaseReport, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListReportsByOrganizationID")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(
			"id", "organization_id", "farm_id", "created_by",
			"animal_species", "disease_name", "severity", "onset_date",
			"total_population", "sick_count", "death_count",
			"morbidity_rate", "mortality_rate", "notes", "created_at",
		).
		From("disease_reports").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*types.DiseaseReport
	for rows.Next() {
		var r types.DiseaseReport
		if err := rows.Scan(reportScanDest(&r)...); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reports, nil
}

const reportColumns = "id, organization_id, farm_id, created_by, animal_species, disease_name, severity, onset_date, total_population, sick_count, death_count, morbidity_rate, mortality_rate, notes, created_at"

func reportScanDest(r *types.DiseaseReport) []any {
	return []any{
		&r.ID, &r.OrganizationID, &r.FarmID, &r.CreatedBy,
		&r.AnimalSpecies, &r.DiseaseName, &r.Severity, &r.OnsetDate,
		&r.TotalPopulation, &r.SickCount, &r.DeathCount,
		&r.MorbidityRate, &r.MortalityRate, &r.Notes, &r.CreatedAt,
	}
}
