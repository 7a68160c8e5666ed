// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsDuplicateKeyError reports whether the error is a postgres unique
// constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKeyViolation reports whether the error is a postgres foreign key
// constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func WrapDuplicateKeyError(err error, msg string) error {
	return fmt.Errorf("%w: %s: %v", ErrDuplicateKey, msg, err)
}

func WrapForeignKeyError(err error, msg string) error {
	return fmt.Errorf("%w: %s: %v", ErrForeignKeyViolation, msg, err)
}
