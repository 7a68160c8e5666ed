// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/provisioning-service/internal/types"
)

// GetRemoteProvisionedUser retrieves the remote identifier link for a
// (user, remote system) pair.
func (s *Storage) GetRemoteProvisionedUser(ctx context.Context, userID, manageID string) (*types.RemoteProvisionedUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetRemoteProvisionedUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("user_id", "manage_id", "remote_identifier", "created_at").
		From("remote_provisioned_users").
		Where(sq.Eq{"user_id": userID, "manage_id": manageID}).
		QueryRowContext(ctx)

	link := &types.RemoteProvisionedUser{}
	err := row.Scan(&link.UserID, &link.ManageID, &link.RemoteIdentifier, &link.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query remote provisioned user: %v", err)
	}

	return link, nil
}

// ListRemoteProvisionedUsers retrieves all remote links held by a user.
func (s *Storage) ListRemoteProvisionedUsers(ctx context.Context, userID string) ([]*types.RemoteProvisionedUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListRemoteProvisionedUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("user_id", "manage_id", "remote_identifier", "created_at").
		From("remote_provisioned_users").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("manage_id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query remote provisioned users: %v", err)
	}
	defer rows.Close()

	links := make([]*types.RemoteProvisionedUser, 0)
	for rows.Next() {
		link := &types.RemoteProvisionedUser{}
		if err := rows.Scan(&link.UserID, &link.ManageID, &link.RemoteIdentifier, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan remote provisioned user: %v", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating remote provisioned users: %v", err)
	}

	return links, nil
}

// UpsertRemoteProvisionedUser inserts a remote link. The unique constraint on
// (user_id, manage_id) is the concurrency guard: when two callers race to
// create the same remote object the loser reads back the winner's row
// instead of erroring.
func (s *Storage) UpsertRemoteProvisionedUser(ctx context.Context, link *types.RemoteProvisionedUser) (*types.RemoteProvisionedUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpsertRemoteProvisionedUser")
	defer span.End()

	now := time.Now().UTC()

	result, err := s.db.Statement(ctx).
		Insert("remote_provisioned_users").
		Columns("user_id", "manage_id", "remote_identifier", "created_at").
		Values(link.UserID, link.ManageID, link.RemoteIdentifier, now).
		Suffix("ON CONFLICT (user_id, manage_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert remote provisioned user: %v", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %v", err)
	}

	if inserted == 0 {
		return s.GetRemoteProvisionedUser(ctx, link.UserID, link.ManageID)
	}

	stored := *link
	stored.CreatedAt = now

	return &stored, nil
}

// DeleteRemoteProvisionedUser removes the remote link after a successful
// remote delete.
func (s *Storage) DeleteRemoteProvisionedUser(ctx context.Context, userID, manageID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteRemoteProvisionedUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("remote_provisioned_users").
		Where(sq.Eq{"user_id": userID, "manage_id": manageID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete remote provisioned user: %v", err)
	}

	return nil
}

// GetRemoteProvisionedGroup retrieves the remote identifier link for a
// (role, remote system) pair.
func (s *Storage) GetRemoteProvisionedGroup(ctx context.Context, roleID, manageID string) (*types.RemoteProvisionedGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetRemoteProvisionedGroup")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("role_id", "manage_id", "remote_identifier", "created_at").
		From("remote_provisioned_groups").
		Where(sq.Eq{"role_id": roleID, "manage_id": manageID}).
		QueryRowContext(ctx)

	link := &types.RemoteProvisionedGroup{}
	err := row.Scan(&link.RoleID, &link.ManageID, &link.RemoteIdentifier, &link.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query remote provisioned group: %v", err)
	}

	return link, nil
}

// ListRemoteProvisionedGroups retrieves all remote links held by a role.
func (s *Storage) ListRemoteProvisionedGroups(ctx context.Context, roleID string) ([]*types.RemoteProvisionedGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListRemoteProvisionedGroups")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("role_id", "manage_id", "remote_identifier", "created_at").
		From("remote_provisioned_groups").
		Where(sq.Eq{"role_id": roleID}).
		OrderBy("manage_id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query remote provisioned groups: %v", err)
	}
	defer rows.Close()

	links := make([]*types.RemoteProvisionedGroup, 0)
	for rows.Next() {
		link := &types.RemoteProvisionedGroup{}
		if err := rows.Scan(&link.RoleID, &link.ManageID, &link.RemoteIdentifier, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan remote provisioned group: %v", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating remote provisioned groups: %v", err)
	}

	return links, nil
}

// UpsertRemoteProvisionedGroup inserts a remote group link with the same
// race semantics as UpsertRemoteProvisionedUser.
func (s *Storage) UpsertRemoteProvisionedGroup(ctx context.Context, link *types.RemoteProvisionedGroup) (*types.RemoteProvisionedGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpsertRemoteProvisionedGroup")
	defer span.End()

	now := time.Now().UTC()

	result, err := s.db.Statement(ctx).
		Insert("remote_provisioned_groups").
		Columns("role_id", "manage_id", "remote_identifier", "created_at").
		Values(link.RoleID, link.ManageID, link.RemoteIdentifier, now).
		Suffix("ON CONFLICT (role_id, manage_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert remote provisioned group: %v", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %v", err)
	}

	if inserted == 0 {
		return s.GetRemoteProvisionedGroup(ctx, link.RoleID, link.ManageID)
	}

	stored := *link
	stored.CreatedAt = now

	return &stored, nil
}

// DeleteRemoteProvisionedGroup removes the remote group link after a
// successful remote delete.
func (s *Storage) DeleteRemoteProvisionedGroup(ctx context.Context, roleID, manageID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteRemoteProvisionedGroup")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("remote_provisioned_groups").
		Where(sq.Eq{"role_id": roleID, "manage_id": manageID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete remote provisioned group: %v", err)
	}

	return nil
}
