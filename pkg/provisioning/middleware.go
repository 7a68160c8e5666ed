// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/tracing"
)

// AuthMiddleware guards the provisioning trigger API with a static bearer
// token, meant for server-to-server calls from the inviting application.
type AuthMiddleware struct {
	token string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (m *AuthMiddleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, span := m.tracer.Start(r.Context(), "provisioning.AuthMiddleware.AuthMiddleware")
		defer span.End()

		bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(bearer), []byte(m.token)) != 1 {
			m.logger.Infof("rejected request to %s: invalid api token", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func NewAuthMiddleware(token string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *AuthMiddleware {
	m := new(AuthMiddleware)

	m.token = token
	m.tracer = tracer
	m.logger = logger

	return m
}
