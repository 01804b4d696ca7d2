// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

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
	mux.Post("/api/v1/organizations", a.create)
	mux.Get("/api/v1/organizations", a.list)
	mux.Post("/api/v1/organizations/join", a.join)
	mux.Get("/api/v1/organizations/{id}/members", a.listMembers)
	mux.Post("/api/v1/admin/organizations/delete", a.adminDelete)
}

type createRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type joinRequest struct {
	ShareCode string `json:"shareCode" validate:"required"`
}

type deleteRequest struct {
	OrganizationID string `json:"organizationId" validate:"required,uuid"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	userID, _ := authentication.GetUserID(r.Context())
	org, err := a.service.CreateOrganization(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, &httpTypes.Response{Success: true, Data: org})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := authentication.GetUserID(r.Context())
	orgs, err := a.service.ListOrganizations(r.Context(), userID)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Data: orgs})
}

func (a *API) join(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	userID, _ := authentication.GetUserID(r.Context())
	org, err := a.service.JoinByShareCode(r.Context(), userID, req.ShareCode)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Data: org})
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	userID, _ := authentication.GetUserID(r.Context())
	members, err := a.service.ListMembers(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Data: members})
}

func (a *API) adminDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	userID, _ := authentication.GetUserID(r.Context())
	if err := a.service.DeleteOrganization(r.Context(), userID, req.OrganizationID); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Message: "organization deleted"})
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
