// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/surveillance-service/internal/db"
	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ StorageInterface = (*Storage)(nil)

const (
	shareCodeLength  = 8
	shareCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// shareCodeMaxAttempts bounds code generation when the generated code
	// is already taken by another organization.
	shareCodeMaxAttempts = 5
)

// newShareCode is a package variable so tests can force code collisions.
var newShareCode = generateShareCode

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "full_name", "role", "organization_id", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "full_name", "role", "organization_id", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	role := u.Role
	if role == "" {
		role = types.RoleMember
	}

	var newUser types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "full_name", "role").
		Values(u.ID, u.Email, u.FullName, role).
		Suffix("RETURNING id, email, full_name, role, organization_id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&newUser.ID, &newUser.Email, &newUser.FullName, &newUser.Role, &newUser.OrganizationID, &newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &newUser, nil
}

func (s *Storage) SetHomeOrganization(ctx context.Context, userID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetHomeOrganization")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("organization_id", organizationID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set home organization: %w", err)
	}
	return nil
}

// ClearHomeOrganization nulls the denormalized pointer only while it still
// references the given organization.
func (s *Storage) ClearHomeOrganization(ctx context.Context, userID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearHomeOrganization")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("organization_id", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":              userID,
			"organization_id": organizationID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear home organization: %w", err)
	}
	return nil
}

// CreateOrganization inserts the organization with a freshly generated unique
// share code and the creator's admin membership in a single transaction.
func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var created types.Organization
	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		code, err := s.freeShareCode(txCtx)
		if err != nil {
			return err
		}

		err = s.db.Statement(txCtx).
			Insert("organizations").
			Columns("id", "name", "description", "share_code", "created_by").
			Values(id.String(), o.Name, o.Description, code, o.CreatedBy).
			Suffix("RETURNING id, name, description, share_code, created_by, created_at").
			QueryRowContext(txCtx).
			Scan(&created.ID, &created.Name, &created.Description, &created.ShareCode, &created.CreatedBy, &created.CreatedAt)

		if err != nil {
			if IsDuplicateKeyError(err) {
				// A concurrent creation claimed the code between the
				// uniqueness check and the insert.
				return ErrDuplicateKey
			}
			return fmt.Errorf("failed to insert organization: %w", err)
		}

		if _, err := s.addMember(txCtx, created.ID, o.CreatedBy, types.RoleAdmin); err != nil {
			return fmt.Errorf("failed to add creator membership: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "description", "share_code", "created_by", "created_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Description, &o.ShareCode, &o.CreatedBy, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

// DeleteOrganization removes the organization row; memberships, invitations,
// farms and reports go with it via ON DELETE CASCADE.
func (s *Storage) DeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrganization")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("organizations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
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

func (s *Storage) ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("o.id", "o.name", "o.description", "o.share_code", "o.created_by", "o.created_at").
		From("organizations o").
		Join("memberships m ON o.id = m.organization_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("o.created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.ShareCode, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

// JoinByShareCode resolves the share code and creates a member-role membership
// in one transaction.
func (s *Storage) JoinByShareCode(ctx context.Context, shareCode, userID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.JoinByShareCode")
	defer span.End()

	var o types.Organization
	err := s.db.WithTx(ctx, func(txCtx context.Context) error {
		err := s.db.Statement(txCtx).
			Select("id", "name", "description", "share_code", "created_by", "created_at").
			From("organizations").
			Where(sq.Eq{"share_code": shareCode}).
			QueryRowContext(txCtx).
			Scan(&o.ID, &o.Name, &o.Description, &o.ShareCode, &o.CreatedBy, &o.CreatedAt)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to resolve share code: %w", err)
		}

		if _, err := s.addMember(txCtx, o.ID, userID, types.RoleMember); err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &o, nil
}

// freeShareCode generates codes until one is not in use. The check is a plain
// SELECT on purpose: a unique-violation on INSERT would abort the surrounding
// transaction and doom every later statement in it, so taken codes must never
// reach the insert.
func (s *Storage) freeShareCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < shareCodeMaxAttempts; attempt++ {
		code, err := newShareCode()
		if err != nil {
			return "", err
		}

		var one int
		err = s.db.Statement(ctx).
			Select("1").
			From("organizations").
			Where(sq.Eq{"share_code": code}).
			QueryRowContext(ctx).
			Scan(&one)

		if errors.Is(err, pgx.ErrNoRows) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check share code: %w", err)
		}
	}

	return "", fmt.Errorf("no free share code after %d attempts", shareCodeMaxAttempts)
}

func generateShareCode() (string, error) {
	buf := make([]byte, shareCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share code: %w", err)
	}

	for i, b := range buf {
		buf[i] = shareCodeCharset[int(b)%len(shareCodeCharset)]
	}
	return string(buf), nil
}
