// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// Message is a single transactional email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// EmailClientInterface is the transport boundary towards the email provider.
type EmailClientInterface interface {
	// Send delivers the message and returns the provider's delivery ID.
	Send(ctx context.Context, msg *Message) (string, error)
}
