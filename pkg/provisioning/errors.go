// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoValidEndDate is returned when a guest account would be provisioned
// without any membership end date in the future.
var ErrNoValidEndDate = errors.New("no membership with a future end date")

// RemoteError is the single error kind raised for a failed remote operation.
// The reference is included in both the error and the server log line so an
// operator can correlate a user-visible failure with the logs without the
// error exposing endpoint details to the caller.
type RemoteError struct {
	EntityID  string
	Protocol  Protocol
	Method    string
	URL       string
	Reference string

	err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s operation failed for %s (reference %s)", e.Protocol, e.EntityID, e.Reference)
}

func (e *RemoteError) Unwrap() error {
	return e.err
}

func newRemoteError(cfg *Config, method, url string, err error) *RemoteError {
	return &RemoteError{
		EntityID:  cfg.EntityID,
		Protocol:  cfg.Protocol,
		Method:    method,
		URL:       url,
		Reference: uuid.NewString()[:8],
		err:       err,
	}
}
