// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_mail.go -source=../../internal/mail/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const (
	orgID        = "org-123"
	requesterID  = "user-admin"
	inviteeEmail = "newvet@example.com"
	invitationID = "inv-123"
	lifetime     = 7 * 24 * time.Hour
)

var frozenNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	storage    *MockStorageInterface
	authz      *MockAuthorizerInterface
	dispatcher *MockDispatcherInterface
	identities *MockIdentityProviderInterface
	logger     *MockLoggerInterface
}

func newServiceUnderTest(ctrl *gomock.Controller, spanName string) (*Service, serviceMocks) {
	m := serviceMocks{
		storage:    NewMockStorageInterface(ctrl),
		authz:      NewMockAuthorizerInterface(ctrl),
		dispatcher: NewMockDispatcherInterface(ctrl),
		identities: NewMockIdentityProviderInterface(ctrl),
		logger:     NewMockLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), spanName).
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	s := NewService(m.storage, m.authz, m.dispatcher, m.identities, lifetime, mockTracer, NewMockMonitorInterface(ctrl), m.logger)
	s.now = func() time.Time { return frozenNow }

	return s, m
}

func TestService_SendInvitation(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "error - requester not admin",
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "error - local user exists, no invitation created",
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), inviteeEmail).
					Return(&types.User{ID: "existing", Email: inviteeEmail}, nil)
			},
			expectedErr: types.ErrUserExists,
		},
		{
			name: "error - upstream identity exists, no invitation created",
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), inviteeEmail).Return(nil, storage.ErrNotFound)
				m.identities.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("identity-1", nil)
			},
			expectedErr: types.ErrUserExists,
		},
		{
			name: "error - unexpired pending invitation already sent",
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), inviteeEmail).Return(nil, storage.ErrNotFound)
				m.identities.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("", nil)
				m.storage.EXPECT().GetPendingInvitation(gomock.Any(), orgID, inviteeEmail).
					Return(&types.Invitation{ID: "inv-old", ExpiresAt: frozenNow.Add(time.Hour)}, nil)
			},
			expectedErr: types.ErrInvitationAlreadySent,
		},
		{
			name: "error - dispatch failure deletes the invitation",
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), inviteeEmail).Return(nil, storage.ErrNotFound)
				m.identities.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("", nil)
				m.storage.EXPECT().GetPendingInvitation(gomock.Any(), orgID, inviteeEmail).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
						inv.ID = invitationID
						return inv, nil
					})
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
					Return(&types.Organization{ID: orgID, Name: "Highland Herd Watch"}, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), requesterID).
					Return(&types.User{ID: requesterID, Email: "admin@example.com"}, nil)
				m.dispatcher.EXPECT().SendInvitationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(DispatchFailed, errors.New("smtp unreachable"))
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), invitationID).Return(nil)
			},
			expectedErr: errors.New("invitation email dispatch failed"),
		},
		{
			name: "success - stale pending invitation is superseded",
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), inviteeEmail).Return(nil, storage.ErrNotFound)
				m.identities.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("", nil)
				m.storage.EXPECT().GetPendingInvitation(gomock.Any(), orgID, inviteeEmail).
					Return(&types.Invitation{ID: "inv-stale", ExpiresAt: frozenNow.Add(-time.Hour)}, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if got, want := inv.ExpiresAt, frozenNow.Add(lifetime); !got.Equal(want) {
							t.Errorf("expected expiry %v, got %v", want, got)
						}
						inv.ID = invitationID
						return inv, nil
					})
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
					Return(&types.Organization{ID: orgID, Name: "Highland Herd Watch"}, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), requesterID).
					Return(&types.User{ID: requesterID, Email: "admin@example.com"}, nil)
				m.dispatcher.EXPECT().SendInvitationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(DispatchSent, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "success - email is normalized before all lookups",
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CanManageOrganization(gomock.Any(), requesterID, orgID).Return(nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), inviteeEmail).Return(nil, storage.ErrNotFound)
				m.identities.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("", nil)
				m.storage.EXPECT().GetPendingInvitation(gomock.Any(), orgID, inviteeEmail).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Email != inviteeEmail {
							t.Errorf("expected normalized email %s, got %s", inviteeEmail, inv.Email)
						}
						inv.ID = invitationID
						return inv, nil
					})
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
					Return(&types.Organization{ID: orgID, Name: "Highland Herd Watch"}, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), requesterID).
					Return(&types.User{ID: requesterID, Email: "admin@example.com"}, nil)
				m.dispatcher.EXPECT().SendInvitationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(DispatchSent, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceUnderTest(ctrl, "invitation.Service.SendInvitation")
			tc.setupMocks(m)

			inv, err := s.SendInvitation(context.Background(), requesterID, " NewVet@Example.com ", orgID)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				if !errors.Is(err, tc.expectedErr) && !errors.Is(tc.expectedErr, err) {
					// Wrapped non-sentinel errors only need the right prefix.
					if got, want := err.Error(), tc.expectedErr.Error(); len(got) < len(want) || got[:len(want)] != want {
						t.Errorf("expected error %q, got %q", want, got)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv.ID != invitationID {
				t.Errorf("expected invitation id %s, got %s", invitationID, inv.ID)
			}
		})
	}
}

func TestService_AcceptInvitation(t *testing.T) {
	pending := func() *types.Invitation {
		return &types.Invitation{
			ID:             invitationID,
			OrganizationID: orgID,
			Email:          inviteeEmail,
			Status:         types.InvitationPending,
			ExpiresAt:      frozenNow.Add(24 * time.Hour),
		}
	}

	testCases := []struct {
		name        string
		userID      string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name:        "error - unauthenticated",
			userID:      "",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: types.ErrUnauthenticated,
		},
		{
			name:   "error - invitation not found",
			userID: "user-1",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:   "error - already accepted",
			userID: "user-1",
			setupMocks: func(m serviceMocks) {
				inv := pending()
				inv.Status = types.InvitationAccepted
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(inv, nil)
			},
			expectedErr: types.ErrInvitationNotPending,
		},
		{
			name:   "error - expired",
			userID: "user-1",
			setupMocks: func(m serviceMocks) {
				inv := pending()
				inv.ExpiresAt = frozenNow.Add(-time.Minute)
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(inv, nil)
			},
			expectedErr: types.ErrInvitationExpired,
		},
		{
			name:   "error - issued to a different email",
			userID: "user-1",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").
					Return(&types.User{ID: "user-1", Email: "someoneelse@example.com"}, nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "success - email match is case insensitive",
			userID: "user-1",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").
					Return(&types.User{ID: "user-1", Email: "NewVet@Example.com"}, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), orgID, "user-1", types.RoleMember).Return("mem-1", nil)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), invitationID).Return(nil)
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
					Return(&types.Organization{ID: orgID, Name: "Highland Herd Watch"}, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceUnderTest(ctrl, "invitation.Service.AcceptInvitation")
			tc.setupMocks(m)

			org, err := s.AcceptInvitation(context.Background(), tc.userID, invitationID)

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
