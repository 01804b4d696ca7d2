// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const (
	identityID = "identity-123"
	userEmail  = "farmer@example.com"
)

var frozenNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestService_HandleRegistration(t *testing.T) {
	testCases := []struct {
		name       string
		identityID string
		email      string
		setupMocks func(*MockStorageInterface, *MockLoggerInterface)
		expectErr  bool
	}{
		{
			name:       "error - missing identity id",
			identityID: "",
			email:      userEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectErr:  true,
		},
		{
			name:       "redelivered webhook is a no-op",
			identityID: identityID,
			email:      userEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "signup without an invitation only provisions the user",
			identityID: identityID,
			email:      "Farmer@Example.com",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u *types.User) (*types.User, error) {
						if u.Email != userEmail {
							t.Errorf("expected normalized email %s, got %s", userEmail, u.Email)
						}
						if u.Role != types.RoleMember {
							t.Errorf("expected role %s, got %s", types.RoleMember, u.Role)
						}
						return u, nil
					})
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), userEmail).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:       "expired invitation is ignored",
			identityID: identityID,
			email:      userEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u *types.User) (*types.User, error) {
						return u, nil
					})
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), userEmail).
					Return(&types.Invitation{ID: "inv-1", OrganizationID: "org-1", ExpiresAt: frozenNow.Add(-time.Hour)}, nil)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "invited signup consumes the invitation",
			identityID: identityID,
			email:      userEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u *types.User) (*types.User, error) {
						return u, nil
					})
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), userEmail).
					Return(&types.Invitation{ID: "inv-1", OrganizationID: "org-1", ExpiresAt: frozenNow.Add(time.Hour)}, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), "org-1", identityID, types.RoleMember).Return("mem-1", nil)
				mockStorage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1").Return(nil)
				mockStorage.EXPECT().SetHomeOrganization(gomock.Any(), identityID, "org-1").Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)
			s.now = func() time.Time { return frozenNow }

			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email, "Farmer One")

			if tc.expectErr {
				if err == nil {
					t.Error("expected an error, got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
