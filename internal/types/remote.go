// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import "time"

// RemoteProvisionedUser records that a user exists on a remote system. It is
// the local half of the reconciliation ledger: a row exists strictly between
// a successful remote create and a successful remote delete.
type RemoteProvisionedUser struct {
	UserID           string    `json:"user_id"`
	ManageID         string    `json:"manage_id"`
	RemoteIdentifier string    `json:"remote_identifier"`
	CreatedAt        time.Time `json:"created_at"`
}

// RemoteProvisionedGroup records that a role exists as a group on a remote
// system, keyed like RemoteProvisionedUser.
type RemoteProvisionedGroup struct {
	RoleID           string    `json:"role_id"`
	ManageID         string    `json:"manage_id"`
	RemoteIdentifier string    `json:"remote_identifier"`
	CreatedAt        time.Time `json:"created_at"`
}
