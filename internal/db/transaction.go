// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"net/http"

	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/provisioning-service/internal/logging"
)

type txContextKey struct{}

// TxFromContext returns the transaction stored in the context, if any.
func TxFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sql.Tx)
	return tx
}

// ContextWithTx stores a transaction in the context.
func ContextWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TransactionMiddleware opens a transaction per request, commits it when the
// handler responds with a non-5xx status and rolls it back otherwise.
func TransactionMiddleware(client DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := client.BeginTx(r.Context())
			if err != nil {
				logger.Errorf("failed to begin transaction: %v", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if p := recover(); p != nil {
					if err := tx.Rollback(); err != nil {
						logger.Errorf("failed to rollback transaction: %v", err)
					}
					panic(p)
				}

				if ww.Status() >= http.StatusInternalServerError {
					if err := tx.Rollback(); err != nil {
						logger.Errorf("failed to rollback transaction: %v", err)
					}
					return
				}

				if err := tx.Commit(); err != nil {
					logger.Errorf("failed to commit transaction: %v", err)
				}
			}()

			next.ServeHTTP(ww, r.WithContext(ContextWithTx(r.Context(), tx)))
		})
	}
}
