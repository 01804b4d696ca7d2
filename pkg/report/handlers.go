// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/surveillance-service/internal/http/types"
	"github.com/canonical/surveillance-service/internal/types"
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
	mux.Post("/api/v1/organizations/{id}/farms", a.createFarm)
	mux.Get("/api/v1/organizations/{id}/farms", a.listFarms)
	mux.Post("/api/v1/organizations/{id}/reports", a.createReport)
	mux.Get("/api/v1/organizations/{id}/reports", a.listReports)
}

type createFarmRequest struct {
	Name       string   `json:"name" validate:"required"`
	Location   string   `json:"location"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,longitude"`
	AnimalType string   `json:"animalType"`
}

type createReportRequest struct {
	FarmID          *string `json:"farmId" validate:"omitempty,uuid"`
	AnimalSpecies   string  `json:"animalSpecies" validate:"required"`
	DiseaseName     string  `json:"diseaseName" validate:"required"`
	Severity        string  `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	OnsetDate       string  `json:"onsetDate" validate:"required,datetime=2006-01-02"`
	TotalPopulation *int64  `json:"totalPopulation" validate:"omitempty,min=0"`
	SickCount       *int64  `json:"sickCount" validate:"omitempty,min=0"`
	DeathCount      *int64  `json:"deathCount" validate:"omitempty,min=0"`
	Notes           string  `json:"notes"`
}

func (a *API) createFarm(w http.ResponseWriter, r *http.Request) {
	var req createFarmRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	userID, _ := authentication.GetUserID(r.Context())
	farm, err := a.service.CreateFarm(r.Context(), userID, &types.Farm{
		OrganizationID: chi.URLParam(r, "id"),
		Name:           req.Name,
		Location:       req.Location,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AnimalType:     req.AnimalType,
	})
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, &httpTypes.Response{Success: true, Data: farm})
}

func (a *API) listFarms(w http.ResponseWriter, r *http.Request) {
	userID, _ := authentication.GetUserID(r.Context())
	farms, err := a.service.ListFarms(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Data: farms})
}

func (a *API) createReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	// Validated above with datetime=2006-01-02.
	onsetDate, _ := time.Parse("2006-01-02", req.OnsetDate)

	userID, _ := authentication.GetUserID(r.Context())
	report, err := a.service.CreateReport(r.Context(), userID, &types.DiseaseReport{
		OrganizationID:  chi.URLParam(r, "id"),
		FarmID:          req.FarmID,
		AnimalSpecies:   req.AnimalSpecies,
		DiseaseName:     req.DiseaseName,
		Severity:        req.Severity,
		OnsetDate:       onsetDate,
		TotalPopulation: req.TotalPopulation,
		SickCount:       req.SickCount,
		DeathCount:      req.DeathCount,
		Notes:           req.Notes,
	})
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, &httpTypes.Response{Success: true, Data: report})
}

func (a *API) listReports(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	userID, _ := authentication.GetUserID(r.Context())
	reports, err := a.service.ListReports(r.Context(), userID, chi.URLParam(r, "id"), page, size)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, &httpTypes.Response{Success: true, Data: reports})
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
