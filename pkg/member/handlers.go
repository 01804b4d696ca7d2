// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
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
	mux.Post("/api/v1/members/delete", a.delete)
	mux.Post("/api/v1/members/promote", a.promote)
	mux.Post("/api/v1/admin/members/delete", a.adminDelete)
}

type mutationRequest struct {
	UserID         string `json:"userId" validate:"required,uuid"`
	OrganizationID string `json:"organizationId" validate:"required,uuid"`
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	a.mutate(w, r, a.service.DeleteMember, "member removed")
}

func (a *API) promote(w http.ResponseWriter, r *http.Request) {
	a.mutate(w, r, a.service.PromoteMember, "member promoted to admin")
}

func (a *API) adminDelete(w http.ResponseWriter, r *http.Request) {
	a.mutate(w, r, a.service.AdminDeleteMember, "member removed")
}

func (a *API) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, requesterID, targetUserID, organizationID string) error, message string) {
	var req mutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, fmt.Errorf("malformed JSON body: %w", httpTypes.ErrBadRequest))
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		httpTypes.WriteError(w, fmt.Errorf("%s: %w", err.Error(), httpTypes.ErrBadRequest))
		return
	}

	requesterID, _ := authentication.GetUserID(r.Context())
	if err := op(r.Context(), requesterID, req.UserID, req.OrganizationID); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Message: message})
}
