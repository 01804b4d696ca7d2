// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/resend/resend-go/v2"
)

var _ EmailClientInterface = (*Client)(nil)

type Client struct {
	client *resend.Client
	sender string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(apiKey, sender string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		client:  resend.NewClient(apiKey),
		sender:  sender,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) Send(ctx context.Context, msg *Message) (string, error) {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Send")
	defer span.End()

	sent, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.sender,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		c.setAvailability(0)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.setAvailability(1)
	return sent.Id, nil
}

func (c *Client) setAvailability(value float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "mail"}, value); err != nil {
		c.logger.Errorf("failed to set mail availability metric: %v", err)
	}
}
