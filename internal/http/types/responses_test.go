// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/surveillance-service/internal/storage"
	domain "github.com/canonical/surveillance-service/internal/types"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"Forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"Self removal", domain.ErrCannotRemoveSelf, http.StatusBadRequest},
		{"Last admin", domain.ErrLastAdmin, http.StatusBadRequest},
		{"Share code length", domain.ErrInvalidShareCode, http.StatusBadRequest},
		{"Expired invitation", domain.ErrInvitationExpired, http.StatusBadRequest},
		{"Bad payload", ErrBadRequest, http.StatusBadRequest},
		{"Not a member", domain.ErrNotAMember, http.StatusNotFound},
		{"Missing resource", storage.ErrNotFound, http.StatusNotFound},
		{"Already admin", domain.ErrAlreadyAdmin, http.StatusConflict},
		{"User exists", domain.ErrUserExists, http.StatusConflict},
		{"Duplicate invitation", domain.ErrInvitationAlreadySent, http.StatusConflict},
		{"Wrapped sentinel", fmt.Errorf("removing member: %w", domain.ErrLastAdmin), http.StatusBadRequest},
		{"Unknown error", errors.New("pg connection refused"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if status := ErrorStatus(test.err); status != test.expected {
				t.Errorf("expected status %d, got %d", test.expected, status)
			}
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error != "internal server error" {
		t.Errorf("expected generic message, got %q", resp.Error)
	}
}

func TestWriteErrorSurfacesDomainMessage(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, domain.ErrLastAdmin)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error != domain.ErrLastAdmin.Error() {
		t.Errorf("expected %q, got %q", domain.ErrLastAdmin.Error(), resp.Error)
	}
}
