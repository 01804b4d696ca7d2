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

const invitationColumns = "id, organization_id, email, invited_by, status, expires_at, created_at"

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var created types.Invitation
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "organization_id", "email", "invited_by", "status", "expires_at").
		Values(id.String(), inv.OrganizationID, inv.Email, inv.InvitedBy, types.InvitationPending, inv.ExpiresAt).
		Suffix("RETURNING "+invitationColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrganizationID, &created.Email, &created.InvitedBy, &created.Status, &created.ExpiresAt, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetPendingInvitation(ctx context.Context, organizationID, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitation")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{
		"organization_id": organizationID,
		"email":           email,
		"status":          types.InvitationPending,
	})
}

func (s *Storage) GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitationByEmail")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{
		"email":  email,
		"status": types.InvitationPending,
	})
}

func (s *Storage) getInvitation(ctx context.Context, pred sq.Eq) (*types.Invitation, error) {
	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select("id", "organization_id", "email", "invited_by", "status", "expires_at", "created_at").
		From("invitations").
		Where(pred).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.OrganizationID, &inv.Email, &inv.InvitedBy, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &inv, nil
}

// DeleteInvitation is the compensating action for a failed email dispatch.
func (s *Storage) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitation")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	return nil
}

func (s *Storage) MarkInvitationAccepted(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", types.InvitationAccepted).
		Where(sq.Eq{
			"id":     id,
			"status": types.InvitationPending,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
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
