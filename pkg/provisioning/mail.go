// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/mail"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/tracing"
)

var _ EmailProvisionerInterface = (*EmailProvisioner)(nil)

// EmailProvisioner is the fallback adapter for remotes without an API: it
// mails a human-readable description of the intended SCIM operation to the
// configured provisioning mailbox. It returns a locally generated placeholder
// identifier so the reconciliation ledger works the same as for real remotes.
type EmailProvisioner struct {
	sender mail.SenderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SendOperation renders and delivers the operation description through the
// mail worker pool, waiting for the delivery outcome.
func (p *EmailProvisioner) SendOperation(ctx context.Context, cfg *Config, operation string, payload any) (string, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.EmailProvisioner.SendOperation")
	defer span.End()

	body, err := renderOperation(cfg, operation, payload)
	if err != nil {
		return "", p.fail(cfg, operation, err)
	}

	msg := &mail.Message{
		To:      cfg.Mail.To,
		Subject: fmt.Sprintf("Provisioning request (%s) for %s", operation, cfg.EntityID),
		Body:    body,
	}

	delivery, err := p.sender.Submit(ctx, msg)
	if err != nil {
		return "", p.fail(cfg, operation, err)
	}

	if err := delivery.Wait(ctx); err != nil {
		return "", p.fail(cfg, operation, err)
	}

	return "mail-" + uuid.NewString(), nil
}

func (p *EmailProvisioner) fail(cfg *Config, operation string, err error) error {
	remoteErr := newRemoteError(cfg, operation, cfg.Mail.To, err)
	p.logger.Errorf(
		"provisioning mail failed: entity=%s operation=%s to=%s reference=%s: %v",
		cfg.EntityID, operation, cfg.Mail.To, remoteErr.Reference, err,
	)
	return remoteErr
}

func renderOperation(cfg *Config, operation string, payload any) (string, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render payload: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The following provisioning change is requested for %s.\n\n", cfg.EntityID)
	fmt.Fprintf(&b, "Operation: %s\n\n", operation)
	fmt.Fprintf(&b, "Payload:\n%s\n", raw)
	b.WriteString("\nThis message was generated because the remote system is configured for manual provisioning.\n")

	return b.String(), nil
}

func NewEmailProvisioner(sender mail.SenderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *EmailProvisioner {
	p := new(EmailProvisioner)

	p.sender = sender

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
