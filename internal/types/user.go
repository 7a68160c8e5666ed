// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"
)

// User represents a locally known account. Users are owned by the
// surrounding application and consumed read-only by the provisioning core.
type User struct {
	ID                     string    `json:"id"`
	Sub                    string    `json:"sub"`
	Email                  string    `json:"email"`
	GivenName              string    `json:"given_name"`
	FamilyName             string    `json:"family_name"`
	SchacHomeOrganization  string    `json:"schac_home_organization"`
	PreferredLanguage      string    `json:"preferred_language"`
	CreatedAt              time.Time `json:"created_at"`

	UserRoles []*UserRole `json:"user_roles,omitempty"`
}

// DisplayName returns the formatted name, falling back to the email local
// part when no name attributes are present.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.GivenName + " " + u.FamilyName)
	if name != "" {
		return name
	}

	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}

	return u.Sub
}

// IsGuest reports whether the user holds guest authority only, which drives
// the Graph invitation flow and EVA guest-account eligibility.
func (u *User) IsGuest() bool {
	if len(u.UserRoles) == 0 {
		return true
	}

	for _, ur := range u.UserRoles {
		if ur.Authority != AuthorityGuest {
			return false
		}
	}

	return true
}
