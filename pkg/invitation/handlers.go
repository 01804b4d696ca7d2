// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/surveillance-service/internal/http/types"
	"github.com/canonical/surveillance-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
}

func NewAPI(service ServiceInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/invitations/send", a.send)
	mux.Post("/api/v1/invitations/accept", a.accept)
}

type sendRequest struct {
	Email          string `json:"email" validate:"required,email"`
	OrganizationID string `json:"organizationId" validate:"required,uuid"`
}

type acceptRequest struct {
	InvitationID string `json:"invitationId" validate:"required,uuid"`
}

func (a *API) send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(r.Context())
	inv, err := a.service.SendInvitation(r.Context(), requesterID, req.Email, req.OrganizationID)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, &httpTypes.Response{Success: true, Data: inv})
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	var req acceptRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	userID, _ := authentication.GetUserID(r.Context())
	org, err := a.service.AcceptInvitation(r.Context(), userID, req.InvitationID)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Data: org})
}

func (a *API) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("malformed JSON body: %w", httpTypes.ErrBadRequest)
	}
	if err := a.validate.Struct(dst); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), httpTypes.ErrBadRequest)
	}
	return nil
}
