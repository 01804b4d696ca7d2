// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func TestAPI_Registration(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		serviceErr     error
		skipService    bool
		expectedStatus int
	}{
		{
			name:           "success",
			body:           `{"id":"identity-123","traits":{"email":"farmer@example.com","name":{"first":"Farmer","last":"One"}}}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - malformed body",
			body:           `{"id":`,
			skipService:    true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - service failure",
			body:           `{"id":"identity-123","traits":{"email":"farmer@example.com","name":{"first":"Farmer","last":"One"}}}`,
			serviceErr:     errors.New("storage unavailable"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if !tc.skipService {
				mockService.EXPECT().
					HandleRegistration(gomock.Any(), "identity-123", "farmer@example.com", "Farmer One").
					Return(tc.serviceErr)
			}

			mux := chi.NewMux()
			NewAPI(mockService).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
