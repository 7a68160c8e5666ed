// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/provisioning-service/internal/manage"
)

type Protocol string

const (
	ProtocolSCIM  Protocol = "scim"
	ProtocolEVA   Protocol = "eva"
	ProtocolGraph Protocol = "graph"
	ProtocolMail  Protocol = "mail"
)

const defaultGraphURL = "https://graph.microsoft.com/v1.0"

var validate = validator.New()

// Config is the validated, immutable view of one directory provisioning
// record. Exactly one of the protocol variants is set, matching Protocol.
type Config struct {
	ID             string
	EntityID       string
	Protocol       Protocol
	ApplicationIDs []string

	SCIM  *SCIMConfig
	EVA   *EVAConfig
	Graph *GraphConfig
	Mail  *MailConfig
}

type SCIMConfig struct {
	URL         string `validate:"required,url"`
	BearerToken string
	User        string
	Password    string

	// UpdateRolePutMethod selects the full-replace PUT strategy for group
	// updates instead of incremental PATCH.
	UpdateRolePutMethod bool
}

type EVAConfig struct {
	URL   string `validate:"required,url"`
	Token string `validate:"required"`

	// GuestAccountDuration caps the validity of provisioned guest
	// accounts, in days.
	GuestAccountDuration int
}

type GraphConfig struct {
	URL      string `validate:"required,url"`
	ClientID string `validate:"required"`
	Secret   string `validate:"required"`
	Tenant   string `validate:"required"`
}

type MailConfig struct {
	To string `validate:"required,email"`
}

// NewConfig converts a raw directory record into a validated Config.
// A record that declares a protocol but misses required fields indicates a
// misconfigured remote system: construction fails and nothing is provisioned.
func NewConfig(record manage.Record) (*Config, error) {
	id := stringField(record, "id")
	if id == "" {
		return nil, fmt.Errorf("provisioning record has no id")
	}

	data, ok := record["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("provisioning record %s has no data", id)
	}

	fields, ok := data["metaDataFields"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("provisioning record %s has no metaDataFields", id)
	}

	cfg := &Config{
		ID:             id,
		EntityID:       stringField(data, "entityid"),
		Protocol:       Protocol(stringField(fields, "provisioning_type")),
		ApplicationIDs: stringSliceField(data, "applications"),
	}

	switch cfg.Protocol {
	case ProtocolSCIM:
		cfg.SCIM = &SCIMConfig{
			URL:                 stringField(fields, "scim_url"),
			BearerToken:         stringField(fields, "scim_bearer_token"),
			User:                stringField(fields, "scim_user"),
			Password:            stringField(fields, "scim_password"),
			UpdateRolePutMethod: boolField(fields, "scim_update_role_put_method"),
		}
		if err := validate.Struct(cfg.SCIM); err != nil {
			return nil, fmt.Errorf("invalid scim configuration for %s: %v", cfg.EntityID, err)
		}
		if cfg.SCIM.BearerToken == "" && (cfg.SCIM.User == "" || cfg.SCIM.Password == "") {
			return nil, fmt.Errorf("invalid scim configuration for %s: requires a bearer token or user and password", cfg.EntityID)
		}
	case ProtocolEVA:
		cfg.EVA = &EVAConfig{
			URL:                  stringField(fields, "eva_url"),
			Token:                stringField(fields, "eva_token"),
			GuestAccountDuration: intField(fields, "eva_guest_account_duration", 30),
		}
		if err := validate.Struct(cfg.EVA); err != nil {
			return nil, fmt.Errorf("invalid eva configuration for %s: %v", cfg.EntityID, err)
		}
	case ProtocolGraph:
		cfg.Graph = &GraphConfig{
			URL:      stringField(fields, "graph_url"),
			ClientID: stringField(fields, "graph_client_id"),
			Secret:   stringField(fields, "graph_secret"),
			Tenant:   stringField(fields, "graph_tenant"),
		}
		if cfg.Graph.URL == "" {
			cfg.Graph.URL = defaultGraphURL
		}
		if err := validate.Struct(cfg.Graph); err != nil {
			return nil, fmt.Errorf("invalid graph configuration for %s: %v", cfg.EntityID, err)
		}
	case ProtocolMail:
		cfg.Mail = &MailConfig{
			To: stringField(fields, "provisioning_mail"),
		}
		if err := validate.Struct(cfg.Mail); err != nil {
			return nil, fmt.Errorf("invalid mail configuration for %s: %v", cfg.EntityID, err)
		}
	default:
		return nil, fmt.Errorf("provisioning record %s has unknown provisioning_type %q", id, cfg.Protocol)
	}

	return cfg, nil
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func boolField(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

func intField(m map[string]any, key string, fallback int) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func stringSliceField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
