// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/types"
)

// Response is the envelope returned by every JSON endpoint. Successful
// handlers set Success and one of the payload fields; failures carry Error.
type Response struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func WriteResponse(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteError maps a domain error onto its HTTP status and writes the error
// envelope. Unknown errors surface as 500 with a generic message so internal
// detail never leaks to the caller.
func WriteError(w http.ResponseWriter, err error) {
	status := ErrorStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	WriteResponse(w, status, &Response{Error: message})
}

// ErrorStatus maps the domain error taxonomy onto HTTP status codes.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrCannotRemoveSelf),
		errors.Is(err, types.ErrLastAdmin),
		errors.Is(err, types.ErrInvalidShareCode),
		errors.Is(err, types.ErrInvitationExpired),
		errors.Is(err, types.ErrInvitationNotPending),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotAMember),
		errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrAlreadyAdmin),
		errors.Is(err, types.ErrUserExists),
		errors.Is(err, types.ErrInvitationAlreadySent),
		errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrBadRequest marks malformed or incomplete request payloads.
var ErrBadRequest = errors.New("invalid request")
