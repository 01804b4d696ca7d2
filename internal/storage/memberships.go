// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/surveillance-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetMembership(ctx context.Context, organizationID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "organization_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{
			"organization_id": organizationID,
			"user_id":         userID,
		}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByOrganizationID(ctx context.Context, organizationID string) ([]*types.OrganizationMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByOrganizationID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.user_id", "u.email", "u.full_name", "m.role").
		From("memberships m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.organization_id": organizationID}).
		OrderBy("m.created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.OrganizationMember
	for rows.Next() {
		var m types.OrganizationMember
		if err := rows.Scan(&m.UserID, &m.Email, &m.FullName, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) AddMember(ctx context.Context, organizationID, userID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	return s.addMember(ctx, organizationID, userID, role)
}

func (s *Storage) addMember(ctx context.Context, organizationID, userID, role string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "organization_id", "user_id", "role").
		Values(id.String(), organizationID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

// RemoveMember deletes the membership unless the target is the organization's
// only admin. Guard and delete are one statement, which closes the
// count-then-delete race for a single target. Two concurrent removals of two
// different admin rows can still each count the other at READ COMMITTED and
// both commit; the window is accepted here.
func (s *Storage) RemoveMember(ctx context.Context, organizationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"organization_id": organizationID,
			"user_id":         userID,
		}).
		Where(sq.Expr(
			"(role <> ? OR (SELECT count(*) FROM memberships WHERE organization_id = ? AND role = ?) > 1)",
			types.RoleAdmin, organizationID, types.RoleAdmin,
		)).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Nothing deleted: either the membership does not exist or the
		// guard blocked the last admin.
		if _, err := s.GetMembership(ctx, organizationID, userID); err != nil {
			return err
		}
		return ErrLastAdminProtected
	}

	return nil
}

func (s *Storage) PromoteMember(ctx context.Context, organizationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.PromoteMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", types.RoleAdmin).
		Where(sq.Eq{
			"organization_id": organizationID,
			"user_id":         userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to promote member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
