// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/provisioning-service/internal/types"
)

type StorageInterface interface {
	// Read-only access to the application-owned entities
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetRole(ctx context.Context, id string) (*types.Role, error)
	ListRoleMembers(ctx context.Context, roleID string) ([]*types.UserRole, error)
	ListExpiredUserRoles(ctx context.Context, before time.Time) ([]*types.UserRole, error)

	// Remote provisioned user ledger
	GetRemoteProvisionedUser(ctx context.Context, userID, manageID string) (*types.RemoteProvisionedUser, error)
	ListRemoteProvisionedUsers(ctx context.Context, userID string) ([]*types.RemoteProvisionedUser, error)
	UpsertRemoteProvisionedUser(ctx context.Context, link *types.RemoteProvisionedUser) (*types.RemoteProvisionedUser, error)
	DeleteRemoteProvisionedUser(ctx context.Context, userID, manageID string) error

	// Remote provisioned group ledger
	GetRemoteProvisionedGroup(ctx context.Context, roleID, manageID string) (*types.RemoteProvisionedGroup, error)
	ListRemoteProvisionedGroups(ctx context.Context, roleID string) ([]*types.RemoteProvisionedGroup, error)
	UpsertRemoteProvisionedGroup(ctx context.Context, link *types.RemoteProvisionedGroup) (*types.RemoteProvisionedGroup, error)
	DeleteRemoteProvisionedGroup(ctx context.Context, roleID, manageID string) error
}
