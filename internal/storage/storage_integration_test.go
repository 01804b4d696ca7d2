// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/canonical/surveillance-service/internal/db"
	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/internal/types"
	"github.com/canonical/surveillance-service/migrations"
)

var shareCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// newTestStorage connects to the database named by TEST_DSN and brings the
// schema up with the embedded migrations. Tests that need a real database
// call it and are skipped when the variable is unset.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("TEST_DSN not set, skipping database-backed tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pgxCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("invalid TEST_DSN: %v", err)
	}

	migrationDB := stdlib.OpenDB(*pgxCfg)
	defer migrationDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, migrationDB, migrations.EmbedMigrations)
	if err != nil {
		t.Fatalf("failed to create migration provider: %v", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	logger := logging.NewNoopLogger()
	monitor := monitoring.NewNoopMonitor()
	tracer := tracing.NewTracer(tracing.NewNoopConfig())

	client, err := db.NewDBClient(db.Config{
		DSN:             dsn,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(client.Close)

	return NewStorage(client, tracer, monitor, logger)
}

func createTestUser(ctx context.Context, t *testing.T, s *Storage) *types.User {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("failed to generate user ID: %v", err)
	}

	u, err := s.CreateUser(ctx, &types.User{
		ID:       id.String(),
		Email:    fmt.Sprintf("%s@herd.test", id.String()),
		FullName: "Herd Keeper",
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return u
}

func createTestOrganization(ctx context.Context, t *testing.T, s *Storage, name, createdBy string) *types.Organization {
	t.Helper()

	org, err := s.CreateOrganization(ctx, &types.Organization{
		Name:      name,
		CreatedBy: createdBy,
	})
	if err != nil {
		t.Fatalf("failed to create organization: %v", err)
	}
	t.Cleanup(func() {
		if err := s.DeleteOrganization(context.Background(), org.ID); err != nil && !errors.Is(err, ErrNotFound) {
			t.Logf("warning: failed to delete organization %s: %v", org.ID, err)
		}
	})

	return org
}

func TestStorage_OrganizationMembershipLifecycle(t *testing.T) {
	s := newTestStorage(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner := createTestUser(ctx, t, s)
	herdsman := createTestUser(ctx, t, s)

	org := createTestOrganization(ctx, t, s, "Highland Cattle Cooperative", owner.ID)

	if !shareCodePattern.MatchString(org.ShareCode) {
		t.Errorf("expected an 8-character uppercase share code, got %q", org.ShareCode)
	}

	m, err := s.GetMembership(ctx, org.ID, owner.ID)
	if err != nil {
		t.Fatalf("expected creator membership, got error: %v", err)
	}
	if m.Role != types.RoleAdmin {
		t.Errorf("expected creator role %q, got %q", types.RoleAdmin, m.Role)
	}

	joined, err := s.JoinByShareCode(ctx, org.ShareCode, herdsman.ID)
	if err != nil {
		t.Fatalf("failed to join by share code: %v", err)
	}
	if joined.ID != org.ID {
		t.Errorf("expected to join organization %s, got %s", org.ID, joined.ID)
	}

	m, err = s.GetMembership(ctx, org.ID, herdsman.ID)
	if err != nil {
		t.Fatalf("expected joined membership, got error: %v", err)
	}
	if m.Role != types.RoleMember {
		t.Errorf("expected joined role %q, got %q", types.RoleMember, m.Role)
	}

	// The creator is the only admin, so the guarded delete must refuse.
	if err := s.RemoveMember(ctx, org.ID, owner.ID); !errors.Is(err, ErrLastAdminProtected) {
		t.Errorf("expected ErrLastAdminProtected removing the only admin, got %v", err)
	}

	if err := s.PromoteMember(ctx, org.ID, herdsman.ID); err != nil {
		t.Fatalf("failed to promote member: %v", err)
	}

	// With a second admin in place the original one is removable.
	if err := s.RemoveMember(ctx, org.ID, owner.ID); err != nil {
		t.Fatalf("failed to remove former admin: %v", err)
	}
	if _, err := s.GetMembership(ctx, org.ID, owner.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected removed membership to be gone, got %v", err)
	}

	// The promoted member is now the only admin and protected in turn.
	if err := s.RemoveMember(ctx, org.ID, herdsman.ID); !errors.Is(err, ErrLastAdminProtected) {
		t.Errorf("expected ErrLastAdminProtected removing the remaining admin, got %v", err)
	}

	unknown, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("failed to generate ID: %v", err)
	}
	if err := s.RemoveMember(ctx, org.ID, unknown.String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound removing a non-member, got %v", err)
	}
}

func TestStorage_CreateOrganizationShareCodeTaken(t *testing.T) {
	s := newTestStorage(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner := createTestUser(ctx, t, s)
	first := createTestOrganization(ctx, t, s, "Valley Sheep Collective", owner.ID)

	// Serve the already-taken code on the first draw. Creation must move on
	// to a fresh code without poisoning the transaction it runs in.
	orig := newShareCode
	t.Cleanup(func() { newShareCode = orig })

	var draws int
	newShareCode = func() (string, error) {
		draws++
		if draws == 1 {
			return first.ShareCode, nil
		}
		return generateShareCode()
	}

	second := createTestOrganization(ctx, t, s, "Valley Goat Collective", owner.ID)

	if draws < 2 {
		t.Fatalf("expected the taken code to be rejected and redrawn, got %d draw(s)", draws)
	}
	if second.ShareCode == first.ShareCode {
		t.Errorf("expected a fresh share code, got the taken one %q", second.ShareCode)
	}

	// The creator membership is written after the code check in the same
	// transaction, so its presence shows the transaction stayed healthy.
	m, err := s.GetMembership(ctx, second.ID, owner.ID)
	if err != nil {
		t.Fatalf("expected creator membership, got error: %v", err)
	}
	if m.Role != types.RoleAdmin {
		t.Errorf("expected creator role %q, got %q", types.RoleAdmin, m.Role)
	}
}
