// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/tracing"
)

var _ DBClientInterface = (*DBClient)(nil)

type Config struct {
	DSN             string
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

type DBClient struct {
	db *sql.DB

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func (c *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if tx := TxFromContext(ctx); tx != nil {
		return builder.RunWith(tx)
	}

	return builder.RunWith(c.db)
}

func (c *DBClient) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}

func (c *DBClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *DBClient) Close() error {
	return c.db.Close()
}

func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	c := new(DBClient)

	c.logger = logger
	c.tracer = tracer
	c.monitor = monitor

	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %v", err)
	}

	if cfg.TracingEnabled {
		connConfig.Tracer = otelpgx.NewTracer()
	}

	c.db = stdlib.OpenDB(*connConfig)

	if cfg.MaxConns > 0 {
		c.db.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		c.db.SetMaxIdleConns(cfg.MinConns)
	}
	if cfg.MaxConnLifetime > 0 {
		c.db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	}
	if cfg.MaxConnIdleTime > 0 {
		c.db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return c, nil
}
