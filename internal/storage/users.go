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

// GetUser retrieves a user with its role memberships hydrated, including the
// applications linked to each role. The provisioning core reads this to
// decide which remote systems are affected by a change.
func (s *Storage) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "sub", "email", "given_name", "family_name", "schac_home_organization", "preferred_language", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	user := &types.User{}
	err := row.Scan(
		&user.ID,
		&user.Sub,
		&user.Email,
		&user.GivenName,
		&user.FamilyName,
		&user.SchacHomeOrganization,
		&user.PreferredLanguage,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %v", err)
	}

	userRoles, err := s.listUserRoles(ctx, sq.Eq{"ur.user_id": id})
	if err != nil {
		return nil, err
	}
	user.UserRoles = userRoles

	return user, nil
}

// GetRole retrieves a role with its linked application identifiers.
func (s *Storage) GetRole(ctx context.Context, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetRole")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "name", "description", "identifier", "created_at").
		From("roles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	role := &types.Role{}
	err := row.Scan(&role.ID, &role.Name, &role.Description, &role.Identifier, &role.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query role: %v", err)
	}

	apps, err := s.listRoleApplications(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	role.ApplicationIDs = apps[id]

	return role, nil
}

// ListRoleMembers retrieves all memberships of a role with users hydrated.
// The full-replace group update strategy uses this as the authoritative
// membership snapshot.
func (s *Storage) ListRoleMembers(ctx context.Context, roleID string) ([]*types.UserRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListRoleMembers")
	defer span.End()

	return s.listUserRoles(ctx, sq.Eq{"ur.role_id": roleID})
}

// ListExpiredUserRoles retrieves memberships whose validity window ended
// before the given time. The cleanup sweep feeds these to the core.
func (s *Storage) ListExpiredUserRoles(ctx context.Context, before time.Time) ([]*types.UserRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListExpiredUserRoles")
	defer span.End()

	return s.listUserRoles(ctx, sq.Lt{"ur.end_date": before})
}

func (s *Storage) listUserRoles(ctx context.Context, pred interface{}) ([]*types.UserRole, error) {
	rows, err := s.db.Statement(ctx).
		Select(
			"ur.id", "ur.user_id", "ur.role_id", "ur.authority", "ur.end_date",
			"u.sub", "u.email", "u.given_name", "u.family_name", "u.schac_home_organization", "u.preferred_language", "u.created_at",
			"r.name", "r.description", "r.identifier", "r.created_at",
		).
		From("user_roles ur").
		Join("users u ON u.id = ur.user_id").
		Join("roles r ON r.id = ur.role_id").
		Where(pred).
		OrderBy("ur.id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query user roles: %v", err)
	}
	defer rows.Close()

	userRoles := make([]*types.UserRole, 0)
	roleIDs := make([]string, 0)
	for rows.Next() {
		ur, err := scanUserRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user role: %v", err)
		}
		userRoles = append(userRoles, ur)
		roleIDs = append(roleIDs, ur.RoleID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user roles: %v", err)
	}

	if len(roleIDs) > 0 {
		apps, err := s.listRoleApplications(ctx, roleIDs)
		if err != nil {
			return nil, err
		}
		for _, ur := range userRoles {
			ur.Role.ApplicationIDs = apps[ur.RoleID]
		}
	}

	return userRoles, nil
}

func (s *Storage) listRoleApplications(ctx context.Context, roleIDs []string) (map[string][]string, error) {
	rows, err := s.db.Statement(ctx).
		Select("role_id", "application_id").
		From("role_applications").
		Where(sq.Eq{"role_id": roleIDs}).
		OrderBy("application_id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query role applications: %v", err)
	}
	defer rows.Close()

	apps := make(map[string][]string)
	for rows.Next() {
		var roleID, appID string
		if err := rows.Scan(&roleID, &appID); err != nil {
			return nil, fmt.Errorf("failed to scan role application: %v", err)
		}
		apps[roleID] = append(apps[roleID], appID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role applications: %v", err)
	}

	return apps, nil
}

func scanUserRole(rows *sql.Rows) (*types.UserRole, error) {
	ur := &types.UserRole{User: &types.User{}, Role: &types.Role{}}

	var authority string
	var endDate sql.NullTime

	err := rows.Scan(
		&ur.ID,
		&ur.UserID,
		&ur.RoleID,
		&authority,
		&endDate,
		&ur.User.Sub,
		&ur.User.Email,
		&ur.User.GivenName,
		&ur.User.FamilyName,
		&ur.User.SchacHomeOrganization,
		&ur.User.PreferredLanguage,
		&ur.User.CreatedAt,
		&ur.Role.Name,
		&ur.Role.Description,
		&ur.Role.Identifier,
		&ur.Role.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ur.User.ID = ur.UserID
	ur.Role.ID = ur.RoleID

	ur.Authority, err = types.ParseAuthority(authority)
	if err != nil {
		return nil, fmt.Errorf("invalid authority %q: %v", authority, err)
	}

	if endDate.Valid {
		t := endDate.Time
		ur.EndDate = &t
	}

	return ur, nil
}
