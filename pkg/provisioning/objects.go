// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"github.com/canonical/provisioning-service/internal/types"
)

// SCIM 2.0 wire format, shared by the SCIM client and the mail fallback
// which renders the same payloads for a human operator.

const (
	schemaUser    = "urn:ietf:params:scim:schemas:core:2.0:User"
	schemaGroup   = "urn:ietf:params:scim:schemas:core:2.0:Group"
	schemaPatchOp = "urn:ietf:params:scim:api:messages:2.0:PatchOp"
)

type OperationType string

const (
	OperationAdd    OperationType = "add"
	OperationRemove OperationType = "remove"
)

type UserResource struct {
	Schemas     []string `json:"schemas"`
	ExternalID  string   `json:"externalId"`
	UserName    string   `json:"userName"`
	Name        Name     `json:"name"`
	ID          string   `json:"id,omitempty"`
	DisplayName string   `json:"displayName"`
	Emails      []Email  `json:"emails"`
}

type Name struct {
	Formatted  string `json:"formatted"`
	FamilyName string `json:"familyName"`
	GivenName  string `json:"givenName"`
}

type Email struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type GroupResource struct {
	Schemas     []string `json:"schemas"`
	ExternalID  string   `json:"externalId"`
	ID          string   `json:"id,omitempty"`
	DisplayName string   `json:"displayName"`
	Members     []Member `json:"members"`
}

type Member struct {
	Value string `json:"value"`
}

type PatchBody struct {
	Schemas    []string         `json:"schemas"`
	Operations []PatchOperation `json:"Operations"`
}

type PatchOperation struct {
	Op    string   `json:"op"`
	Path  string   `json:"path"`
	Value []Member `json:"value"`
}

func newUserResource(user *types.User, remoteID string) *UserResource {
	return &UserResource{
		Schemas:    []string{schemaUser},
		ExternalID: user.Sub,
		UserName:   user.Email,
		Name: Name{
			Formatted:  user.DisplayName(),
			FamilyName: user.FamilyName,
			GivenName:  user.GivenName,
		},
		ID:          remoteID,
		DisplayName: user.DisplayName(),
		Emails:      []Email{{Type: "other", Value: user.Email}},
	}
}

func newGroupResource(role *types.Role, remoteID string, memberIDs []string) *GroupResource {
	members := make([]Member, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, Member{Value: id})
	}

	return &GroupResource{
		Schemas:     []string{schemaGroup},
		ExternalID:  role.Identifier,
		ID:          remoteID,
		DisplayName: role.Name,
		Members:     members,
	}
}

func newPatchBody(op OperationType, memberID string) *PatchBody {
	return &PatchBody{
		Schemas: []string{schemaPatchOp},
		Operations: []PatchOperation{
			{
				Op:    string(op),
				Path:  "members",
				Value: []Member{{Value: memberID}},
			},
		},
	}
}
