// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/tracing"
	"github.com/canonical/provisioning-service/internal/types"
)

var _ SCIMClientInterface = (*SCIMClient)(nil)

type SCIMClient struct {
	httpClient *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateUser posts a SCIM User resource and returns the remote id assigned
// by the remote system.
func (c *SCIMClient) CreateUser(ctx context.Context, cfg *Config, user *types.User) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.SCIMClient.CreateUser")
	defer span.End()

	return c.create(ctx, cfg, cfg.SCIM.URL+"/Users", newUserResource(user, ""))
}

// UpdateUser replaces the SCIM User resource addressed by the stored remote id.
func (c *SCIMClient) UpdateUser(ctx context.Context, cfg *Config, user *types.User, remoteID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.SCIMClient.UpdateUser")
	defer span.End()

	url := fmt.Sprintf("%s/Users/%s", cfg.SCIM.URL, remoteID)
	_, err := c.do(ctx, cfg, http.MethodPut, url, newUserResource(user, remoteID))
	return err
}

// DeleteUser deletes the remote SCIM User. A 404 means the remote object is
// already gone and counts as a successful delete for link cleanup.
func (c *SCIMClient) DeleteUser(ctx context.Context, cfg *Config, remoteID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.SCIMClient.DeleteUser")
	defer span.End()

	url := fmt.Sprintf("%s/Users/%s", cfg.SCIM.URL, remoteID)
	_, err := c.do(ctx, cfg, http.MethodDelete, url, nil)
	return err
}

// CreateGroup posts a SCIM Group resource with empty membership and returns
// the remote id.
func (c *SCIMClient) CreateGroup(ctx context.Context, cfg *Config, role *types.Role) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.SCIMClient.CreateGroup")
	defer span.End()

	return c.create(ctx, cfg, cfg.SCIM.URL+"/Groups", newGroupResource(role, "", nil))
}

// ReplaceGroup puts the full membership snapshot, used by remotes without
// PATCH support.
func (c *SCIMClient) ReplaceGroup(ctx context.Context, cfg *Config, role *types.Role, remoteID string, memberIDs []string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.SCIMClient.ReplaceGroup")
	defer span.End()

	url := fmt.Sprintf("%s/Groups/%s", cfg.SCIM.URL, remoteID)
	_, err := c.do(ctx, cfg, http.MethodPut, url, newGroupResource(role, remoteID, memberIDs))
	return err
}

// PatchGroupMembers sends a single add or remove member operation.
func (c *SCIMClient) PatchGroupMembers(ctx context.Context, cfg *Config, remoteID string, op OperationType, memberID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.SCIMClient.PatchGroupMembers")
	defer span.End()

	url := fmt.Sprintf("%s/Groups/%s", cfg.SCIM.URL, remoteID)
	_, err := c.do(ctx, cfg, http.MethodPatch, url, newPatchBody(op, memberID))
	return err
}

// DeleteGroup deletes the remote SCIM Group, treating 404 as success.
func (c *SCIMClient) DeleteGroup(ctx context.Context, cfg *Config, remoteID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.SCIMClient.DeleteGroup")
	defer span.End()

	url := fmt.Sprintf("%s/Groups/%s", cfg.SCIM.URL, remoteID)
	_, err := c.do(ctx, cfg, http.MethodDelete, url, nil)
	return err
}

func (c *SCIMClient) create(ctx context.Context, cfg *Config, url string, payload any) (string, error) {
	body, err := c.do(ctx, cfg, http.MethodPost, url, payload)
	if err != nil {
		return "", err
	}

	var resource struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &resource); err != nil || resource.ID == "" {
		return "", c.fail(cfg, http.MethodPost, url, fmt.Errorf("remote response carries no id: %v", err))
	}

	return resource.ID, nil
}

func (c *SCIMClient) do(ctx context.Context, cfg *Config, method, url string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, newRemoteError(cfg, method, url, fmt.Errorf("failed to marshal payload: %v", err))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, newRemoteError(cfg, method, url, err)
	}

	req.Header.Set("Content-Type", "application/scim+json")
	if cfg.SCIM.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.SCIM.BearerToken)
	} else {
		req.SetBasicAuth(cfg.SCIM.User, cfg.SCIM.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(cfg, method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(cfg, method, url, err)
	}

	if method == http.MethodDelete && resp.StatusCode == http.StatusNotFound {
		c.logger.Infof("remote %s already deleted on %s", url, cfg.EntityID)
		return body, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.fail(cfg, method, url, fmt.Errorf("remote returned status %d: %s", resp.StatusCode, body))
	}

	return body, nil
}

func (c *SCIMClient) fail(cfg *Config, method, url string, err error) error {
	remoteErr := newRemoteError(cfg, method, url, err)
	c.logger.Errorf(
		"scim operation failed: entity=%s method=%s url=%s reference=%s: %v",
		cfg.EntityID, method, url, remoteErr.Reference, err,
	)
	return remoteErr
}

func NewSCIMClient(timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SCIMClient {
	c := new(SCIMClient)

	c.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
