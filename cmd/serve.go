// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/provisioning-service/internal/config"
	"github.com/canonical/provisioning-service/internal/db"
	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/mail"
	"github.com/canonical/provisioning-service/internal/manage"
	"github.com/canonical/provisioning-service/internal/monitoring/prometheus"
	"github.com/canonical/provisioning-service/internal/storage"
	"github.com/canonical/provisioning-service/internal/tracing"
	"github.com/canonical/provisioning-service/pkg/authentication"
	"github.com/canonical/provisioning-service/pkg/provisioning"
	"github.com/canonical/provisioning-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("provisioning-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var directory manage.ManageInterface
	if specs.ManageURL != "" {
		directory = manage.NewClient(specs.ManageURL, specs.ManageUser, specs.ManageSecret, specs.RemoteTimeout, tracer, monitor, logger)
	} else {
		logger.Info("No manage endpoint configured, using noop directory")
		directory = manage.NewNoopClient()
	}

	var sender mail.SenderInterface
	if specs.MailEnabled {
		sender, err = mail.NewSender(
			mail.Config{
				Host:     specs.MailHost,
				Port:     specs.MailPort,
				User:     specs.MailUser,
				Password: specs.MailPassword,
				From:     specs.MailFrom,
				Workers:  specs.MailWorkers,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create mail sender: %v", err)
		}
		defer sender.Close()
	} else {
		logger.Info("Mail delivery is disabled, using noop sender")
		sender = mail.NewNoopSender()
	}

	jwtVerifier, err := authentication.NewJWTAuthenticator(
		context.Background(),
		specs.AuthenticationEnabled,
		specs.AuthenticationIssuer,
		specs.AuthenticationJwksURL,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to setup JWT authenticator: %v", err)
	}

	scimClient := provisioning.NewSCIMClient(specs.RemoteTimeout, tracer, monitor, logger)
	evaClient := provisioning.NewEVAClient(specs.RemoteTimeout, tracer, monitor, logger)
	graphClient := provisioning.NewGraphClient(specs.RemoteTimeout, nil, tracer, monitor, logger)
	emailProvisioner := provisioning.NewEmailProvisioner(sender, tracer, monitor, logger)

	router := web.NewRouter(
		specs.ApiToken,
		specs.AuthenticationEnabled,
		s,
		dbClient,
		directory,
		scimClient,
		evaClient,
		graphClient,
		emailProvisioner,
		jwtVerifier,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
