// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const (
	orgID       = "org-123"
	requesterID = "user-admin"
	targetID    = "user-target"
)

func TestService_DeleteMember(t *testing.T) {
	testCases := []struct {
		name        string
		targetID    string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:     "error - requester not admin",
			targetID: targetID,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:     "error - self removal rejected regardless of role",
			targetID: requesterID,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
			},
			expectedErr: types.ErrCannotRemoveSelf,
		},
		{
			name:     "error - target not a member",
			targetID: targetID,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotAMember,
		},
		{
			name:     "error - last admin protected",
			targetID: targetID,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).
					Return(&types.Membership{OrganizationID: orgID, UserID: targetID, Role: types.RoleAdmin}, nil)
				mockStorage.EXPECT().RemoveMember(gomock.Any(), orgID, targetID).Return(storage.ErrLastAdminProtected)
			},
			expectedErr: types.ErrLastAdmin,
		},
		{
			name:     "success - home organization clear failure is swallowed",
			targetID: targetID,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).
					Return(&types.Membership{OrganizationID: orgID, UserID: targetID, Role: types.RoleMember}, nil)
				mockStorage.EXPECT().RemoveMember(gomock.Any(), orgID, targetID).Return(nil)
				mockStorage.EXPECT().ClearHomeOrganization(gomock.Any(), targetID, orgID).Return(errors.New("update failed"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "success",
			targetID: targetID,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).
					Return(&types.Membership{OrganizationID: orgID, UserID: targetID, Role: types.RoleMember}, nil)
				mockStorage.EXPECT().RemoveMember(gomock.Any(), orgID, targetID).Return(nil)
				mockStorage.EXPECT().ClearHomeOrganization(gomock.Any(), targetID, orgID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "member.Service.DeleteMember").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			err := s.DeleteMember(context.Background(), requesterID, tc.targetID, orgID)

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

func TestService_PromoteMember(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "error - requester not admin",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "error - target not a member",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotAMember,
		},
		{
			// Idempotence: the storage write must not happen.
			name: "error - already admin performs no write",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).
					Return(&types.Membership{OrganizationID: orgID, UserID: targetID, Role: types.RoleAdmin}, nil)
			},
			expectedErr: types.ErrAlreadyAdmin,
		},
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).
					Return(&types.Membership{OrganizationID: orgID, UserID: targetID, Role: types.RoleMember}, nil)
				mockStorage.EXPECT().PromoteMember(gomock.Any(), orgID, targetID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "member.Service.PromoteMember").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			err := s.PromoteMember(context.Background(), requesterID, targetID, orgID)

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

func TestService_AdminDeleteMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "member.Service.AdminDeleteMember").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockAuthz.EXPECT().RequireSuperAdmin(gomock.Any(), requesterID).Return(nil)
	mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, targetID).
		Return(&types.Membership{OrganizationID: orgID, UserID: targetID, Role: types.RoleMember}, nil)
	mockStorage.EXPECT().RemoveMember(gomock.Any(), orgID, targetID).Return(nil)
	mockStorage.EXPECT().ClearHomeOrganization(gomock.Any(), targetID, orgID).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

	if err := s.AdminDeleteMember(context.Background(), requesterID, targetID, orgID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
