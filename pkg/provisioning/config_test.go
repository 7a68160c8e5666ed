// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"testing"

	"github.com/canonical/provisioning-service/internal/manage"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name string

		record manage.Record

		expectError bool
		check       func(*testing.T, *Config)
	}{
		{
			name:   "valid scim with bearer token",
			record: scimRecord("manage-1", true, "app-1", "app-2"),
			check: func(t *testing.T, cfg *Config) {
				if cfg.Protocol != ProtocolSCIM {
					t.Fatalf("expected scim, got %s", cfg.Protocol)
				}
				if !cfg.SCIM.UpdateRolePutMethod {
					t.Fatal("expected put method to be set")
				}
				if len(cfg.ApplicationIDs) != 2 {
					t.Fatalf("expected two applications, got %v", cfg.ApplicationIDs)
				}
			},
		},
		{
			name: "scim put method from string",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":     "https://sp.example.org",
					"applications": []any{"app-1"},
					"metaDataFields": map[string]any{
						"provisioning_type":           "scim",
						"scim_url":                    "https://scim.example.org",
						"scim_user":                   "u",
						"scim_password":               "p",
						"scim_update_role_put_method": "true",
					},
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.SCIM.UpdateRolePutMethod {
					t.Fatal("expected put method to be parsed from string")
				}
				if cfg.SCIM.BearerToken != "" {
					t.Fatal("expected basic auth variant")
				}
			},
		},
		{
			name: "scim without credentials",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":     "https://sp.example.org",
					"applications": []any{"app-1"},
					"metaDataFields": map[string]any{
						"provisioning_type": "scim",
						"scim_url":          "https://scim.example.org",
					},
				},
			},
			expectError: true,
		},
		{
			name: "scim with invalid url",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":     "https://sp.example.org",
					"applications": []any{"app-1"},
					"metaDataFields": map[string]any{
						"provisioning_type": "scim",
						"scim_url":          "not a url",
						"scim_bearer_token": "secret",
					},
				},
			},
			expectError: true,
		},
		{
			name:   "valid eva",
			record: evaRecord("manage-1", 14, "app-1"),
			check: func(t *testing.T, cfg *Config) {
				if cfg.EVA.GuestAccountDuration != 14 {
					t.Fatalf("expected duration 14, got %d", cfg.EVA.GuestAccountDuration)
				}
			},
		},
		{
			name: "eva duration defaults",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":     "https://sp.example.org",
					"applications": []any{"app-1"},
					"metaDataFields": map[string]any{
						"provisioning_type": "eva",
						"eva_url":           "https://eva.example.org",
						"eva_token":         "secret",
					},
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.EVA.GuestAccountDuration != 30 {
					t.Fatalf("expected default duration 30, got %d", cfg.EVA.GuestAccountDuration)
				}
			},
		},
		{
			name: "eva without token",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":     "https://sp.example.org",
					"applications": []any{"app-1"},
					"metaDataFields": map[string]any{
						"provisioning_type": "eva",
						"eva_url":           "https://eva.example.org",
					},
				},
			},
			expectError: true,
		},
		{
			name:   "graph url defaults",
			record: graphRecord("manage-1", "app-1"),
			check: func(t *testing.T, cfg *Config) {
				if cfg.Graph.URL != defaultGraphURL {
					t.Fatalf("expected default graph url, got %s", cfg.Graph.URL)
				}
			},
		},
		{
			name: "graph without tenant",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":     "https://sp.example.org",
					"applications": []any{"app-1"},
					"metaDataFields": map[string]any{
						"provisioning_type": "graph",
						"graph_client_id":   "client",
						"graph_secret":      "secret",
					},
				},
			},
			expectError: true,
		},
		{
			name:   "valid mail",
			record: mailRecord("manage-1", "app-1"),
			check: func(t *testing.T, cfg *Config) {
				if cfg.Mail.To != "admin@example.org" {
					t.Fatalf("unexpected recipient %s", cfg.Mail.To)
				}
			},
		},
		{
			name: "mail with invalid recipient",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":     "https://sp.example.org",
					"applications": []any{"app-1"},
					"metaDataFields": map[string]any{
						"provisioning_type": "mail",
						"provisioning_mail": "not-an-address",
					},
				},
			},
			expectError: true,
		},
		{
			name: "unknown provisioning type",
			record: manage.Record{
				"id": "manage-1",
				"data": map[string]any{
					"entityid":       "https://sp.example.org",
					"applications":   []any{"app-1"},
					"metaDataFields": map[string]any{"provisioning_type": "ftp"},
				},
			},
			expectError: true,
		},
		{
			name:        "missing id",
			record:      manage.Record{"data": map[string]any{}},
			expectError: true,
		},
		{
			name:        "missing data",
			record:      manage.Record{"id": "manage-1"},
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := NewConfig(test.record)

			if test.expectError {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if test.check != nil {
				test.check(t, cfg)
			}
		})
	}
}
