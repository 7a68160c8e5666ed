// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	// Statement returns a statement builder bound to the transaction stored
	// in the context, or to the underlying pool when no transaction is open.
	Statement(ctx context.Context) sq.StatementBuilderType
	BeginTx(ctx context.Context) (*sql.Tx, error)
	Ping(ctx context.Context) error
	Close() error
}
