// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"time"
)

type Authority string

const (
	AuthoritySuperUser Authority = "SUPER_USER"
	AuthorityManager   Authority = "MANAGER"
	AuthorityInviter   Authority = "INVITER"
	AuthorityGuest     Authority = "GUEST"
)

var ErrInvalidAuthority = errors.New("invalid authority")

// ParseAuthority converts a string to an Authority.
func ParseAuthority(s string) (Authority, error) {
	switch s {
	case "SUPER_USER":
		return AuthoritySuperUser, nil
	case "MANAGER":
		return AuthorityManager, nil
	case "INVITER":
		return AuthorityInviter, nil
	case "GUEST", "":
		return AuthorityGuest, nil
	default:
		return "", ErrInvalidAuthority
	}
}

// Role represents a grantable group tied to one or more remote applications.
// In the provisioning domain a role is a "group" on the remote side.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Identifier  string    `json:"identifier"`
	CreatedAt   time.Time `json:"created_at"`

	// ApplicationIDs are the identifiers of the applications this role
	// grants access to, as known by the provisioning directory.
	ApplicationIDs []string `json:"application_ids"`
}

// UserRole is the membership edge between a user and a role.
type UserRole struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	RoleID    string     `json:"role_id"`
	Authority Authority  `json:"authority"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	User *User `json:"user,omitempty"`
	Role *Role `json:"role,omitempty"`
}

// Expired reports whether the membership validity window has passed.
func (ur *UserRole) Expired(now time.Time) bool {
	return ur.EndDate != nil && ur.EndDate.Before(now)
}
