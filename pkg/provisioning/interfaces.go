// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"time"

	"github.com/canonical/provisioning-service/internal/types"
)

type ServiceInterface interface {
	NewUser(ctx context.Context, user *types.User) error
	UpdateUser(ctx context.Context, user *types.User) error
	DeleteUser(ctx context.Context, user *types.User, ignoreFailures bool) error
	NewGroup(ctx context.Context, role *types.Role) error
	UpdateGroupMembership(ctx context.Context, userRole *types.UserRole, op OperationType) error
	DeleteGroup(ctx context.Context, role *types.Role) error
}

type SCIMClientInterface interface {
	CreateUser(ctx context.Context, cfg *Config, user *types.User) (string, error)
	UpdateUser(ctx context.Context, cfg *Config, user *types.User, remoteID string) error
	DeleteUser(ctx context.Context, cfg *Config, remoteID string) error
	CreateGroup(ctx context.Context, cfg *Config, role *types.Role) (string, error)
	ReplaceGroup(ctx context.Context, cfg *Config, role *types.Role, remoteID string, memberIDs []string) error
	PatchGroupMembers(ctx context.Context, cfg *Config, remoteID string, op OperationType, memberID string) error
	DeleteGroup(ctx context.Context, cfg *Config, remoteID string) error
}

type EVAClientInterface interface {
	CreateGuestAccount(ctx context.Context, cfg *Config, user *types.User, validTill time.Time) (string, error)
	UpdateGuestAccount(ctx context.Context, cfg *Config, user *types.User, remoteID string, validTill time.Time) error
	DeleteGuestAccount(ctx context.Context, cfg *Config, remoteID string) error
}

type GraphClientInterface interface {
	CreateUser(ctx context.Context, cfg *Config, user *types.User) (string, error)
	UpdateUser(ctx context.Context, cfg *Config, user *types.User, remoteID string) error
	DeleteUser(ctx context.Context, cfg *Config, remoteID string) error
}

type EmailProvisionerInterface interface {
	SendOperation(ctx context.Context, cfg *Config, operation string, payload any) (string, error)
}

// DatabaseInterface is the slice of storage the provisioning core depends on.
type DatabaseInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetRole(ctx context.Context, id string) (*types.Role, error)
	ListRoleMembers(ctx context.Context, roleID string) ([]*types.UserRole, error)

	GetRemoteProvisionedUser(ctx context.Context, userID, manageID string) (*types.RemoteProvisionedUser, error)
	ListRemoteProvisionedUsers(ctx context.Context, userID string) ([]*types.RemoteProvisionedUser, error)
	UpsertRemoteProvisionedUser(ctx context.Context, link *types.RemoteProvisionedUser) (*types.RemoteProvisionedUser, error)
	DeleteRemoteProvisionedUser(ctx context.Context, userID, manageID string) error

	GetRemoteProvisionedGroup(ctx context.Context, roleID, manageID string) (*types.RemoteProvisionedGroup, error)
	ListRemoteProvisionedGroups(ctx context.Context, roleID string) ([]*types.RemoteProvisionedGroup, error)
	UpsertRemoteProvisionedGroup(ctx context.Context, link *types.RemoteProvisionedGroup) (*types.RemoteProvisionedGroup, error)
	DeleteRemoteProvisionedGroup(ctx context.Context, roleID, manageID string) error
}
