// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "errors"

// Domain error taxonomy. Services wrap these with context; the HTTP layer maps
// them onto status codes.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("admin access required")

	ErrCannotRemoveSelf = errors.New("cannot remove yourself from the organization")
	ErrNotAMember       = errors.New("user is not a member of this organization")
	ErrLastAdmin        = errors.New("cannot remove the last admin, promote another member to admin first")
	ErrAlreadyAdmin     = errors.New("user is already an admin")

	ErrUserExists            = errors.New("user with this email already exists")
	ErrInvitationAlreadySent = errors.New("invitation already sent to this email")
	ErrInvitationNotPending  = errors.New("invitation is no longer pending")
	ErrInvitationExpired     = errors.New("invitation has expired")

	ErrInvalidShareCode = errors.New("share code must be exactly 8 characters")
)
