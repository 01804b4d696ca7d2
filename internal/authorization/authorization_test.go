// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const (
	orgID   = "org-123"
	adminID = "user-admin"
)

func TestAuthorizer_CanManageOrganization(t *testing.T) {
	testCases := []struct {
		name        string
		userID      string
		superAdmins []string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:        "error - empty caller is unauthenticated",
			userID:      "",
			setupMocks:  func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: types.ErrUnauthenticated,
		},
		{
			name:   "error - unknown identity is unauthenticated",
			userID: "ghost",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrUnauthenticated,
		},
		{
			name:   "success - global super admin role bypasses membership",
			userID: "root",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), "root").
					Return(&types.User{ID: "root", Email: "root@example.com", Role: types.RoleSuperAdmin}, nil)
			},
		},
		{
			name:        "success - configured super admin email bypasses membership",
			userID:      "cfg",
			superAdmins: []string{"Ops@Example.com"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), "cfg").
					Return(&types.User{ID: "cfg", Email: "ops@example.com", Role: types.RoleMember}, nil)
			},
		},
		{
			name:   "error - target organization missing",
			userID: adminID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), adminID).
					Return(&types.User{ID: adminID, Email: "a@example.com", Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:   "error - no membership is forbidden",
			userID: adminID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), adminID).
					Return(&types.User{ID: adminID, Email: "a@example.com", Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, adminID).Return(nil, storage.ErrNotFound)

				mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
				mockSecurity.EXPECT().AuthzFailure(adminID, "organization:"+orgID)
				mockLogger.EXPECT().Security().Return(mockSecurity)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "error - member role insufficient",
			userID: adminID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), adminID).
					Return(&types.User{ID: adminID, Email: "a@example.com", Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, adminID).
					Return(&types.Membership{OrganizationID: orgID, UserID: adminID, Role: types.RoleMember}, nil)

				mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
				mockSecurity.EXPECT().AuthzFailure(adminID, "organization:"+orgID)
				mockLogger.EXPECT().Security().Return(mockSecurity)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "success - organization admin",
			userID: adminID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), adminID).
					Return(&types.User{ID: adminID, Email: "a@example.com", Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, adminID).
					Return(&types.Membership{OrganizationID: orgID, UserID: adminID, Role: types.RoleAdmin}, nil)
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

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CanManageOrganization").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			a := NewAuthorizer(mockStorage, tc.superAdmins, mockTracer, mockMonitor, mockLogger)

			err := a.CanManageOrganization(context.Background(), tc.userID, orgID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_CanViewOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CanViewOrganization").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "member-1").
		Return(&types.User{ID: "member-1", Email: "m@example.com", Role: types.RoleMember}, nil)
	mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
	mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, "member-1").
		Return(&types.Membership{OrganizationID: orgID, UserID: "member-1", Role: types.RoleMember}, nil)

	a := NewAuthorizer(mockStorage, nil, mockTracer, mockMonitor, mockLogger)

	if err := a.CanViewOrganization(context.Background(), "member-1", orgID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthorizer_RequireSuperAdmin(t *testing.T) {
	testCases := []struct {
		name        string
		user        *types.User
		superAdmins []string
		denied      bool
	}{
		{
			name: "success - global role",
			user: &types.User{ID: "u1", Email: "u1@example.com", Role: types.RoleSuperAdmin},
		},
		{
			name:        "success - configured email",
			user:        &types.User{ID: "u2", Email: "boss@example.com", Role: types.RoleMember},
			superAdmins: []string{"boss@example.com"},
		},
		{
			name:   "error - plain member denied",
			user:   &types.User{ID: "u3", Email: "u3@example.com", Role: types.RoleMember},
			denied: true,
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

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.RequireSuperAdmin").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().GetUserByID(gomock.Any(), tc.user.ID).Return(tc.user, nil)

			if tc.denied {
				mockSecurity := NewMockSecurityLoggerInterface(ctrl)
				mockSecurity.EXPECT().AuthzFailure(tc.user.ID, "super_admin")
				mockLogger.EXPECT().Security().Return(mockSecurity)
			}

			a := NewAuthorizer(mockStorage, tc.superAdmins, mockTracer, mockMonitor, mockLogger)

			err := a.RequireSuperAdmin(context.Background(), tc.user.ID)

			if tc.denied {
				if !errors.Is(err, types.ErrForbidden) {
					t.Errorf("expected forbidden, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
