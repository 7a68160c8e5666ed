// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/tracing"
	"github.com/canonical/provisioning-service/internal/types"
)

var _ EVAClientInterface = (*EVAClient)(nil)

const evaDateFormat = "2006-01-02"

type EVAClient struct {
	httpClient *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateGuestAccount submits a guest account request valid until validTill.
// Callers must validate the window beforehand, an expired date is a caller
// bug and the remote would provision a dead account.
func (c *EVAClient) CreateGuestAccount(ctx context.Context, cfg *Config, user *types.User, validTill time.Time) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.EVAClient.CreateGuestAccount")
	defer span.End()

	return c.submit(ctx, cfg, user, "", validTill)
}

// UpdateGuestAccount re-submits the guest account with the stored remote id,
// extending or shrinking its validity window.
func (c *EVAClient) UpdateGuestAccount(ctx context.Context, cfg *Config, user *types.User, remoteID string, validTill time.Time) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.EVAClient.UpdateGuestAccount")
	defer span.End()

	_, err := c.submit(ctx, cfg, user, remoteID, validTill)
	return err
}

// DeleteGuestAccount disables the guest account on the remote system.
func (c *EVAClient) DeleteGuestAccount(ctx context.Context, cfg *Config, remoteID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.EVAClient.DeleteGuestAccount")
	defer span.End()

	endpoint := fmt.Sprintf("%s/api/v1/guest/disable/%s", cfg.EVA.URL, remoteID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return c.fail(cfg, http.MethodPost, endpoint, err)
	}
	req.Header.Set("X-Api-Key", cfg.EVA.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(cfg, http.MethodPost, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Infof("guest account %s already gone on %s", remoteID, cfg.EntityID)
		return nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.fail(cfg, http.MethodPost, endpoint, fmt.Errorf("remote returned status %d", resp.StatusCode))
	}

	return nil
}

func (c *EVAClient) submit(ctx context.Context, cfg *Config, user *types.User, remoteID string, validTill time.Time) (string, error) {
	endpoint := cfg.EVA.URL + "/api/v1/guest/create"

	form := url.Values{}
	form.Set("name", user.DisplayName())
	form.Set("email", user.Email)
	form.Set("dateFrom", time.Now().UTC().Format(evaDateFormat))
	form.Set("dateTill", validTill.Format(evaDateFormat))
	form.Set("notifyByEmail", "true")
	form.Set("notifyBySms", "false")
	form.Set("preferredLanguage", preferredLanguage(user))
	if remoteID != "" {
		form.Set("id", remoteID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", c.fail(cfg, http.MethodPost, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Api-Key", cfg.EVA.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.fail(cfg, http.MethodPost, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.fail(cfg, http.MethodPost, endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", c.fail(cfg, http.MethodPost, endpoint, fmt.Errorf("remote returned status %d: %s", resp.StatusCode, body))
	}

	var account struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &account); err != nil || account.ID == "" {
		return "", c.fail(cfg, http.MethodPost, endpoint, fmt.Errorf("remote response carries no id: %v", err))
	}

	return account.ID, nil
}

func (c *EVAClient) fail(cfg *Config, method, endpoint string, err error) error {
	remoteErr := newRemoteError(cfg, method, endpoint, err)
	c.logger.Errorf(
		"eva operation failed: entity=%s method=%s url=%s reference=%s: %v",
		cfg.EntityID, method, endpoint, remoteErr.Reference, err,
	)
	return remoteErr
}

func preferredLanguage(user *types.User) string {
	if user.PreferredLanguage != "" {
		return user.PreferredLanguage
	}
	return "en"
}

func NewEVAClient(timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *EVAClient {
	c := new(EVAClient)

	c.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
