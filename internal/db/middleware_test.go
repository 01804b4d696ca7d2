// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/surveillance-service/internal/logging"
)

type stubDBClient struct {
	txStarted bool
	txErr     error
}

func (s *stubDBClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder
}

func (s *stubDBClient) TxStatement(context.Context) (TxInterface, sq.StatementBuilderType, error) {
	return nil, sq.StatementBuilder, nil
}

func (s *stubDBClient) BeginTx(ctx context.Context) (context.Context, TxInterface, error) {
	return ctx, nil, nil
}

func (s *stubDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	s.txStarted = true
	s.txErr = fn(ctx)
	return s.txErr
}

func (s *stubDBClient) Close() {}

func TestTransactionMiddleware(t *testing.T) {
	testCases := []struct {
		name          string
		method        string
		handlerStatus int
		wantTx        bool
		wantRollback  bool
	}{
		{
			name:          "GET skips the transaction",
			method:        http.MethodGet,
			handlerStatus: http.StatusOK,
		},
		{
			name:          "successful POST commits",
			method:        http.MethodPost,
			handlerStatus: http.StatusCreated,
			wantTx:        true,
		},
		{
			name:          "failing POST rolls back",
			method:        http.MethodPost,
			handlerStatus: http.StatusConflict,
			wantTx:        true,
			wantRollback:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubDBClient{}

			handler := TransactionMiddleware(client, logging.NewNoopLogger())(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tc.handlerStatus)
				}),
			)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, "/api/v1/organizations", nil))

			if client.txStarted != tc.wantTx {
				t.Errorf("expected txStarted=%v, got %v", tc.wantTx, client.txStarted)
			}
			if tc.wantRollback && client.txErr == nil {
				t.Error("expected the transaction callback to report failure")
			}
			if tc.wantTx && !tc.wantRollback && client.txErr != nil {
				t.Errorf("unexpected transaction error: %v", client.txErr)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(0, 50); got != 0 {
		t.Errorf("expected offset 0 for unset page, got %d", got)
	}
	if got := Offset(3, 25); got != 50 {
		t.Errorf("expected offset 50 for page 3 size 25, got %d", got)
	}
}

func TestPageSize(t *testing.T) {
	if got := PageSize(0); got != defaultPageSize {
		t.Errorf("expected default page size %d, got %d", defaultPageSize, got)
	}
	if got := PageSize(25); got != 25 {
		t.Errorf("expected page size 25, got %d", got)
	}
}
