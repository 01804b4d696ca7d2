// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/surveillance-service/internal/mail"
	"github.com/canonical/surveillance-service/internal/types"
)

func dispatcherFixtures() (*types.Invitation, *types.Organization, *types.User) {
	inv := &types.Invitation{
		ID:             invitationID,
		OrganizationID: orgID,
		Email:          inviteeEmail,
		Status:         types.InvitationPending,
		ExpiresAt:      time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC),
	}
	org := &types.Organization{ID: orgID, Name: "Highland Herd Watch"}
	inviter := &types.User{ID: requesterID, Email: "admin@example.com", FullName: "Admin One"}
	return inv, org, inviter
}

func TestDispatcher_SendInvitationEmail(t *testing.T) {
	testCases := []struct {
		name           string
		permissive     bool
		noClient       bool
		setupMocks     func(*MockEmailClientInterface, *MockLoggerInterface)
		expectedResult DispatchResult
		expectErr      bool
	}{
		{
			name:     "skipped - no email client configured",
			noClient: true,
			setupMocks: func(mockMail *MockEmailClientInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedResult: DispatchSkipped,
		},
		{
			name: "failed - standard mode propagates the transport error",
			setupMocks: func(mockMail *MockEmailClientInterface, mockLogger *MockLoggerInterface) {
				mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))
			},
			expectedResult: DispatchFailed,
			expectErr:      true,
		},
		{
			name:       "failed - permissive mode swallows the transport error",
			permissive: true,
			setupMocks: func(mockMail *MockEmailClientInterface, mockLogger *MockLoggerInterface) {
				mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedResult: DispatchFailed,
		},
		{
			name: "sent",
			setupMocks: func(mockMail *MockEmailClientInterface, mockLogger *MockLoggerInterface) {
				mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msg *mail.Message) (string, error) {
						if msg.To != inviteeEmail {
							t.Errorf("expected recipient %s, got %s", inviteeEmail, msg.To)
						}
						if !strings.Contains(msg.Subject, "Highland Herd Watch") {
							t.Errorf("expected subject to name the organization, got %q", msg.Subject)
						}
						if !strings.Contains(msg.HTML, "https://straintrack.example.com/invitations/accept?id="+invitationID) {
							t.Errorf("expected accept link in body, got %q", msg.HTML)
						}
						return "delivery-1", nil
					})
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedResult: DispatchSent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMail := NewMockEmailClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "invitation.Dispatcher.SendInvitationEmail").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockMail, mockLogger)

			var client mail.EmailClientInterface
			if !tc.noClient {
				client = mockMail
			}
			d := NewDispatcher(client, "https://straintrack.example.com", tc.permissive, mockTracer, mockLogger)

			inv, org, inviter := dispatcherFixtures()
			result, err := d.SendInvitationEmail(context.Background(), inv, org, inviter)

			if result != tc.expectedResult {
				t.Errorf("expected result %s, got %s", tc.expectedResult, result)
			}
			if tc.expectErr && err == nil {
				t.Error("expected an error, got none")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
