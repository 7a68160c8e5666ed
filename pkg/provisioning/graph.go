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
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/tracing"
	"github.com/canonical/provisioning-service/internal/types"
)

var _ GraphClientInterface = (*GraphClient)(nil)

var graphScopes = []string{"https://graph.microsoft.com/.default"}

type azureTokenProvider interface {
	GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error)
}

// CredentialFactory builds a token provider for one tenant. Tests inject a
// fake instead of patching client internals at runtime.
type CredentialFactory func(tenant, clientID, secret string) (azureTokenProvider, error)

func defaultCredentialFactory(tenant, clientID, secret string) (azureTokenProvider, error) {
	return azidentity.NewClientSecretCredential(tenant, clientID, secret, nil)
}

type GraphClient struct {
	httpClient  *http.Client
	credentials CredentialFactory

	mu    sync.Mutex
	cache map[string]azureTokenProvider

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type invitation struct {
	InvitedUserEmailAddress string `json:"invitedUserEmailAddress"`
	InvitedUserDisplayName  string `json:"invitedUserDisplayName"`
	InviteRedirectURL       string `json:"inviteRedirectUrl"`
	SendInvitationMessage   bool   `json:"sendInvitationMessage"`
}

// CreateUser invites the user into the tenant and returns the resulting
// directory object id. Guests receive the identity platform's invitation
// mail; for institution accounts the invitation is silent and the welcome is
// sent by the application itself.
func (c *GraphClient) CreateUser(ctx context.Context, cfg *Config, user *types.User) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.GraphClient.CreateUser")
	defer span.End()

	endpoint := cfg.Graph.URL + "/invitations"
	payload := invitation{
		InvitedUserEmailAddress: user.Email,
		InvitedUserDisplayName:  user.DisplayName(),
		InviteRedirectURL:       "https://myapps.microsoft.com",
		SendInvitationMessage:   user.IsGuest(),
	}

	body, err := c.do(ctx, cfg, http.MethodPost, endpoint, payload)
	if err != nil {
		return "", err
	}

	var resp struct {
		InvitedUser struct {
			ID string `json:"id"`
		} `json:"invitedUser"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.InvitedUser.ID == "" {
		return "", c.fail(cfg, http.MethodPost, endpoint, fmt.Errorf("invitation response carries no user id: %v", err))
	}

	return resp.InvitedUser.ID, nil
}

// UpdateUser patches the directory object addressed by the stored remote id.
func (c *GraphClient) UpdateUser(ctx context.Context, cfg *Config, user *types.User, remoteID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.GraphClient.UpdateUser")
	defer span.End()

	endpoint := fmt.Sprintf("%s/users/%s", cfg.Graph.URL, remoteID)
	payload := map[string]string{
		"displayName": user.DisplayName(),
		"givenName":   user.GivenName,
		"surname":     user.FamilyName,
	}

	_, err := c.do(ctx, cfg, http.MethodPatch, endpoint, payload)
	return err
}

// DeleteUser removes the directory object, treating 404 as already deleted.
func (c *GraphClient) DeleteUser(ctx context.Context, cfg *Config, remoteID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.GraphClient.DeleteUser")
	defer span.End()

	endpoint := fmt.Sprintf("%s/users/%s", cfg.Graph.URL, remoteID)
	_, err := c.do(ctx, cfg, http.MethodDelete, endpoint, nil)
	return err
}

func (c *GraphClient) do(ctx context.Context, cfg *Config, method, endpoint string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, c.fail(cfg, method, endpoint, fmt.Errorf("failed to marshal payload: %v", err))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, c.fail(cfg, method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.token(ctx, cfg)
	if err != nil {
		return nil, c.fail(cfg, method, endpoint, fmt.Errorf("failed to get graph token: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(cfg, method, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(cfg, method, endpoint, err)
	}

	if method == http.MethodDelete && resp.StatusCode == http.StatusNotFound {
		c.logger.Infof("graph object already deleted on %s", cfg.EntityID)
		return body, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.fail(cfg, method, endpoint, fmt.Errorf("remote returned status %d: %s", resp.StatusCode, body))
	}

	return body, nil
}

func (c *GraphClient) token(ctx context.Context, cfg *Config) (string, error) {
	c.mu.Lock()
	provider, ok := c.cache[cfg.ID]
	if !ok {
		var err error
		provider, err = c.credentials(cfg.Graph.Tenant, cfg.Graph.ClientID, cfg.Graph.Secret)
		if err != nil {
			c.mu.Unlock()
			return "", err
		}
		c.cache[cfg.ID] = provider
	}
	c.mu.Unlock()

	token, err := provider.GetToken(ctx, policy.TokenRequestOptions{Scopes: graphScopes})
	if err != nil {
		return "", err
	}

	return token.Token, nil
}

func (c *GraphClient) fail(cfg *Config, method, endpoint string, err error) error {
	remoteErr := newRemoteError(cfg, method, endpoint, err)
	c.logger.Errorf(
		"graph operation failed: entity=%s method=%s url=%s reference=%s: %v",
		cfg.EntityID, method, endpoint, remoteErr.Reference, err,
	)
	return remoteErr
}

func NewGraphClient(timeout time.Duration, credentials CredentialFactory, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *GraphClient {
	c := new(GraphClient)

	c.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	if credentials == nil {
		credentials = defaultCredentialFactory
	}
	c.credentials = credentials
	c.cache = make(map[string]azureTokenProvider)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
