// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
)

// NewProvider creates an OIDC provider through issuer discovery.
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return provider, nil
}

// NewProviderWithJWKS builds a token verifier against an explicit JWKS URL,
// for issuers whose well-known configuration is not reachable from here.
func NewProviderWithJWKS(ctx context.Context, issuer, jwksURL string) (*oidc.RemoteKeySet, *oidc.IDTokenVerifier, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
	verifier := oidc.NewVerifier(issuer, keySet, &oidc.Config{
		SkipClientIDCheck: true,
		SkipIssuerCheck:   false,
	})

	return keySet, verifier, nil
}
