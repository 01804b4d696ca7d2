// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/surveillance-service/internal/types"
	"github.com/canonical/surveillance-service/pkg/authentication"
)

const validBody = `{"userId":"018f7f3e-0000-7000-8000-000000000001","organizationId":"018f7f3e-0000-7000-8000-000000000002"}`

func TestAPI_Delete(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		serviceErr     error
		skipService    bool
		expectedStatus int
	}{
		{
			name:           "success",
			body:           validBody,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - malformed body",
			body:           `{"userId":`,
			skipService:    true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - missing organization id",
			body:           `{"userId":"018f7f3e-0000-7000-8000-000000000001"}`,
			skipService:    true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - unauthenticated",
			body:           validBody,
			serviceErr:     types.ErrUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "error - forbidden",
			body:           validBody,
			serviceErr:     types.ErrForbidden,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "error - self removal",
			body:           validBody,
			serviceErr:     types.ErrCannotRemoveSelf,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - last admin",
			body:           validBody,
			serviceErr:     types.ErrLastAdmin,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - not a member",
			body:           validBody,
			serviceErr:     types.ErrNotAMember,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if !tc.skipService {
				mockService.EXPECT().
					DeleteMember(gomock.Any(), "caller-1", "018f7f3e-0000-7000-8000-000000000001", "018f7f3e-0000-7000-8000-000000000002").
					Return(tc.serviceErr)
			}

			mux := chi.NewMux()
			NewAPI(mockService).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/members/delete", strings.NewReader(tc.body))
			req = req.WithContext(authentication.WithUserID(req.Context(), "caller-1"))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d, body %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Promote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().
		PromoteMember(gomock.Any(), "caller-1", "018f7f3e-0000-7000-8000-000000000001", "018f7f3e-0000-7000-8000-000000000002").
		Return(types.ErrAlreadyAdmin)

	mux := chi.NewMux()
	NewAPI(mockService).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/members/promote", strings.NewReader(validBody))
	req = req.WithContext(authentication.WithUserID(req.Context(), "caller-1"))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rr.Code)
	}
}
