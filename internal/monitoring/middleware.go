// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/provisioning-service/internal/logging"
)

type Middleware struct {
	monitor MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) ResponseTime() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			labels := map[string]string{
				"route":  route,
				"status": strconv.Itoa(ww.Status()),
			}

			if err := m.monitor.SetResponseTimeMetric(labels, time.Since(start).Seconds()); err != nil {
				m.logger.Errorf("failed to set response time metric: %v", err)
			}
		})
	}
}

func NewMiddleware(monitor MonitorInterface, logger logging.LoggerInterface) *Middleware {
	mdw := new(Middleware)

	mdw.monitor = monitor
	mdw.logger = logger

	return mdw
}
