// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/provisioning-service/internal/db"
	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/manage"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/storage"
	"github.com/canonical/provisioning-service/internal/tracing"
	"github.com/canonical/provisioning-service/pkg/authentication"
	"github.com/canonical/provisioning-service/pkg/metrics"
	"github.com/canonical/provisioning-service/pkg/provisioning"
	"github.com/canonical/provisioning-service/pkg/status"
)

func NewRouter(
	token string,
	authenticationEnabled bool,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	directory manage.ManageInterface,
	scimClient provisioning.SCIMClientInterface,
	evaClient provisioning.EVAClientInterface,
	graphClient provisioning.GraphClientInterface,
	emailProvisioner provisioning.EmailProvisionerInterface,
	jwtVerifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	if dbClient != nil {
		middlewares = append(middlewares, db.TransactionMiddleware(dbClient, logger))
	}

	middlewares = append(
		middlewares,
		middleware.RequestLogger(logging.NewLogFormatter(logger)), // LogFormatter will only work if logger is set to DEBUG level
	)

	router.Use(middlewares...)

	var authMiddleware *provisioning.AuthMiddleware = nil
	if token != "" {
		authMiddleware = provisioning.NewAuthMiddleware(token, tracer, logger)
	}

	service := provisioning.NewService(
		s,
		directory,
		scimClient,
		evaClient,
		graphClient,
		emailProvisioner,
		tracer,
		monitor,
		logger,
	)

	apiRouter := router
	if authenticationEnabled {
		jwtAuthMiddleware := authentication.NewMiddleware(jwtVerifier, tracer, monitor, logger)
		apiRouter = router.With(jwtAuthMiddleware.Authenticate()).(*chi.Mux)
	}

	provisioning.NewAPI(
		service,
		s,
		authMiddleware,
		tracer,
		monitor,
		logger).RegisterEndpoints(apiRouter)
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
