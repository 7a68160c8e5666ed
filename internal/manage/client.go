// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package manage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/tracing"
)

var _ ManageInterface = (*Client)(nil)

const provisioningPath = "/manage/api/internal/provisioning"

type Client struct {
	baseURL    string
	user       string
	secret     string
	httpClient *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ProvisioningRecords queries the directory for the provisioning
// configurations connected to the given applications. The directory is
// authoritative and queried on every provisioning operation, no local cache.
func (c *Client) ProvisioningRecords(ctx context.Context, applicationIDs []string) ([]Record, error) {
	ctx, span := c.tracer.Start(ctx, "manage.Client.ProvisioningRecords")
	defer span.End()

	if len(applicationIDs) == 0 {
		return []Record{}, nil
	}

	body, err := json.Marshal(applicationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal application ids: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+provisioningPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build manage request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.user, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.availability(0)
		return nil, fmt.Errorf("manage request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.availability(0)
		return nil, fmt.Errorf("manage returned status %d", resp.StatusCode)
	}
	c.availability(1)

	records := make([]Record, 0)
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode manage response: %v", err)
	}

	return records, nil
}

func (c *Client) availability(up float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "manage"}, up); err != nil {
		c.logger.Errorf("failed to set manage availability metric: %v", err)
	}
}

func NewClient(baseURL, user, secret string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.baseURL = baseURL
	c.user = user
	c.secret = secret
	c.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
