// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const (
	userID = "user-123"
	orgID  = "org-123"
)

func TestService_CreateOrganization(t *testing.T) {
	testCases := []struct {
		name        string
		userID      string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:        "error - unauthenticated",
			userID:      "",
			setupMocks:  func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: types.ErrUnauthenticated,
		},
		{
			name:   "success - home organization update failure is swallowed",
			userID: userID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o *types.Organization) (*types.Organization, error) {
						if o.CreatedBy != userID {
							t.Errorf("expected creator %s, got %s", userID, o.CreatedBy)
						}
						o.ID = orgID
						o.ShareCode = "A1B2C3D4"
						return o, nil
					})
				mockStorage.EXPECT().SetHomeOrganization(gomock.Any(), userID, orgID).Return(errors.New("update failed"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "success",
			userID: userID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o *types.Organization) (*types.Organization, error) {
						o.ID = orgID
						o.ShareCode = "A1B2C3D4"
						return o, nil
					})
				mockStorage.EXPECT().SetHomeOrganization(gomock.Any(), userID, orgID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
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

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.CreateOrganization").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			org, err := s.CreateOrganization(context.Background(), tc.userID, "Highland Herd Watch", "regional flock monitoring")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org.ID != orgID {
				t.Errorf("expected organization id %s, got %s", orgID, org.ID)
			}
		})
	}
}

func TestService_JoinByShareCode(t *testing.T) {
	testCases := []struct {
		name        string
		shareCode   string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			// Length is checked before the storage layer is consulted; the
			// storage mock has no expectations and would fail on any call.
			name:        "error - short code never reaches storage",
			shareCode:   "ABC",
			setupMocks:  func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: types.ErrInvalidShareCode,
		},
		{
			name:        "error - long code never reaches storage",
			shareCode:   "ABCDEFGH1",
			setupMocks:  func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: types.ErrInvalidShareCode,
		},
		{
			name:      "error - unknown code",
			shareCode: "AAAA1111",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().JoinByShareCode(gomock.Any(), "AAAA1111", userID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:      "success - code is trimmed and uppercased",
			shareCode: " a1b2c3d4 ",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().JoinByShareCode(gomock.Any(), "A1B2C3D4", userID).
					Return(&types.Organization{ID: orgID, ShareCode: "A1B2C3D4"}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
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

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.JoinByShareCode").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			org, err := s.JoinByShareCode(context.Background(), userID, tc.shareCode)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org.ID != orgID {
				t.Errorf("expected organization id %s, got %s", orgID, org.ID)
			}
		})
	}
}

func TestService_ListMembers(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedErr error
	}{
		{
			name: "error - not a member of the organization",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().CanViewOrganization(gomock.Any(), userID, orgID).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().CanViewOrganization(gomock.Any(), userID, orgID).Return(nil)
				mockStorage.EXPECT().ListMembersByOrganizationID(gomock.Any(), orgID).
					Return([]*types.OrganizationMember{
						{UserID: userID, Email: "vet@example.com", FullName: "Vet One", Role: types.RoleAdmin},
					}, nil)
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

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.ListMembers").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			members, err := s.ListMembers(context.Background(), userID, orgID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(members) != 1 {
				t.Errorf("expected 1 member, got %d", len(members))
			}
		})
	}
}

func TestService_DeleteOrganization(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "error - not a super admin",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().RequireSuperAdmin(gomock.Any(), userID).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockAuthz.EXPECT().RequireSuperAdmin(gomock.Any(), userID).Return(nil)
				mockStorage.EXPECT().DeleteOrganization(gomock.Any(), orgID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
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

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.DeleteOrganization").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			err := s.DeleteOrganization(context.Background(), userID, orgID)

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
