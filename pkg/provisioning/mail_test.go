// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"strings"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/provisioning-service/internal/mail"
)

type failingSender struct {
	err error
}

func (f *failingSender) Submit(ctx context.Context, msg *mail.Message) (*mail.Delivery, error) {
	return nil, f.err
}

func (f *failingSender) Close() {}

type recordingSender struct {
	mail.NoopSender

	last *mail.Message
}

func (r *recordingSender) Submit(ctx context.Context, msg *mail.Message) (*mail.Delivery, error) {
	r.last = msg
	return r.NoopSender.Submit(ctx, msg)
}

func mailConfig() *Config {
	return &Config{
		ID:       "manage-1",
		EntityID: "https://manual.example.org",
		Protocol: ProtocolMail,
		Mail:     &MailConfig{To: "admin@example.org"},
	}
}

func TestEmailProvisionerSendOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer, monitor, logger := testObservability(ctrl)
	sender := &recordingSender{}
	p := NewEmailProvisioner(sender, tracer, monitor, logger)

	user := testUser()
	id, err := p.SendOperation(context.Background(), mailConfig(), "create user", newUserResource(user, ""))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(id, "mail-") {
		t.Fatalf("expected a mail placeholder identifier, got %s", id)
	}
	if sender.last == nil {
		t.Fatal("expected a message to be submitted")
	}
	if sender.last.To != "admin@example.org" {
		t.Fatalf("unexpected recipient %s", sender.last.To)
	}
	if !strings.Contains(sender.last.Subject, "create user") {
		t.Fatalf("unexpected subject %s", sender.last.Subject)
	}
	if !strings.Contains(sender.last.Body, user.Email) {
		t.Fatalf("expected payload in body, got %s", sender.last.Body)
	}
}

func TestEmailProvisionerPlaceholdersAreUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer, monitor, logger := testObservability(ctrl)
	p := NewEmailProvisioner(mail.NewNoopSender(), tracer, monitor, logger)

	first, err := p.SendOperation(context.Background(), mailConfig(), "create user", newUserResource(testUser(), ""))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := p.SendOperation(context.Background(), mailConfig(), "create user", newUserResource(testUser(), ""))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first == second {
		t.Fatalf("placeholder identifiers must be unique, got %s twice", first)
	}
}

func TestEmailProvisionerSubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer, monitor, logger := testObservability(ctrl)
	p := NewEmailProvisioner(&failingSender{err: errors.New("queue full")}, tracer, monitor, logger)

	_, err := p.SendOperation(context.Background(), mailConfig(), "create user", newUserResource(testUser(), ""))

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Reference == "" {
		t.Fatal("expected a correlation reference")
	}
}
