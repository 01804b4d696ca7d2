// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/mail"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/internal/types"
)

// DispatchResult is the outcome of an invitation email dispatch.
type DispatchResult string

const (
	DispatchSent    DispatchResult = "sent"
	DispatchSkipped DispatchResult = "skipped"
	DispatchFailed  DispatchResult = "failed"
)

const invitationSubject = "You've been invited to join %s on StrainTrack"

const invitationTemplate = `<div style="font-family: sans-serif; max-width: 600px;">
  <h2>Join {{.OrganizationName}} on StrainTrack</h2>
  <p>{{.InviterName}} has invited you to join <strong>{{.OrganizationName}}</strong>
  for livestock disease surveillance and reporting.</p>
  <p><a href="{{.AcceptURL}}" style="display: inline-block; padding: 10px 20px; background: #0e8420; color: #fff; text-decoration: none; border-radius: 4px;">Accept invitation</a></p>
  <p>This invitation expires on {{.ExpiresAt}}.</p>
  <p style="color: #666; font-size: 12px;">If you weren't expecting this invitation you can ignore this email.</p>
</div>`

var invitationBody = template.Must(template.New("invitation").Parse(invitationTemplate))

var _ DispatcherInterface = (*Dispatcher)(nil)

// Dispatcher renders and sends invitation emails. In permissive mode a
// transport failure is logged and reported as non-fatal so the invitation
// record persists; in standard mode the error propagates and the caller
// performs the compensating deletion.
type Dispatcher struct {
	mail       mail.EmailClientInterface
	appURL     string
	permissive bool

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewDispatcher(client mail.EmailClientInterface, appURL string, permissive bool, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Dispatcher {
	return &Dispatcher{
		mail:       client,
		appURL:     appURL,
		permissive: permissive,
		tracer:     tracer,
		logger:     logger,
	}
}

func (d *Dispatcher) SendInvitationEmail(ctx context.Context, inv *types.Invitation, org *types.Organization, inviter *types.User) (DispatchResult, error) {
	ctx, span := d.tracer.Start(ctx, "invitation.Dispatcher.SendInvitationEmail")
	defer span.End()

	if d.mail == nil {
		d.logger.Warnf("no email client configured, skipping invitation email to %s", inv.Email)
		return DispatchSkipped, nil
	}

	inviterName := inviter.FullName
	if inviterName == "" {
		inviterName = inviter.Email
	}

	var body bytes.Buffer
	err := invitationBody.Execute(&body, map[string]string{
		"OrganizationName": org.Name,
		"InviterName":      inviterName,
		"AcceptURL":        fmt.Sprintf("%s/invitations/accept?id=%s", d.appURL, inv.ID),
		"ExpiresAt":        inv.ExpiresAt.Format("2 January 2006"),
	})
	if err != nil {
		return DispatchFailed, fmt.Errorf("failed to render invitation email: %w", err)
	}

	deliveryID, err := d.mail.Send(ctx, &mail.Message{
		To:      inv.Email,
		Subject: fmt.Sprintf(invitationSubject, org.Name),
		HTML:    body.String(),
	})
	if err != nil {
		if d.permissive {
			d.logger.Errorf("invitation email to %s failed, keeping invitation %s: %v", inv.Email, inv.ID, err)
			return DispatchFailed, nil
		}
		return DispatchFailed, fmt.Errorf("failed to send invitation email: %w", err)
	}

	d.logger.Debugf("invitation email to %s delivered, id %s", inv.Email, deliveryID)
	return DispatchSent, nil
}
