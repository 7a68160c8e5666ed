// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"
)

func evaConfig(endpoint string) *Config {
	return &Config{
		ID:       "manage-1",
		EntityID: "https://eva.example.org",
		Protocol: ProtocolEVA,
		EVA: &EVAConfig{
			URL:                  endpoint,
			Token:                "api-key",
			GuestAccountDuration: 30,
		},
	}
}

func TestEVAClientCreateGuestAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validTill := time.Now().AddDate(0, 0, 14)

	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/guest/create" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "api-key" {
			t.Errorf("missing api key header")
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		form = r.PostForm
		w.Write([]byte(`{"id": "guest-1"}`))
	}))
	defer srv.Close()

	tracer, monitor, logger := testObservability(ctrl)
	c := NewEVAClient(time.Second, tracer, monitor, logger)

	user := testUser()
	id, err := c.CreateGuestAccount(context.Background(), evaConfig(srv.URL), user, validTill)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "guest-1" {
		t.Fatalf("expected guest-1, got %s", id)
	}

	if form.Get("email") != user.Email || form.Get("name") != user.DisplayName() {
		t.Fatalf("unexpected form %v", form)
	}
	if form.Get("dateTill") != validTill.Format(evaDateFormat) {
		t.Fatalf("expected dateTill %s, got %s", validTill.Format(evaDateFormat), form.Get("dateTill"))
	}
	if form.Get("notifyByEmail") != "true" || form.Get("notifyBySms") != "false" {
		t.Fatalf("unexpected notification flags %v", form)
	}
	if form.Get("preferredLanguage") != "en" {
		t.Fatalf("expected language fallback en, got %s", form.Get("preferredLanguage"))
	}
	if form.Get("id") != "" {
		t.Fatalf("create must not carry an id, got %s", form.Get("id"))
	}
}

func TestEVAClientUpdateGuestAccountCarriesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		form = r.PostForm
		w.Write([]byte(`{"id": "guest-1"}`))
	}))
	defer srv.Close()

	tracer, monitor, logger := testObservability(ctrl)
	c := NewEVAClient(time.Second, tracer, monitor, logger)

	err := c.UpdateGuestAccount(context.Background(), evaConfig(srv.URL), testUser(), "guest-1", time.Now().AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.Get("id") != "guest-1" {
		t.Fatalf("expected id guest-1, got %s", form.Get("id"))
	}
}

func TestEVAClientDeleteGuestAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string

		status      int
		expectError bool
	}{
		{name: "disabled", status: http.StatusOK},
		{name: "already gone", status: http.StatusNotFound},
		{name: "remote failure", status: http.StatusInternalServerError, expectError: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/guest/disable/guest-1" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(test.status)
			}))
			defer srv.Close()

			tracer, monitor, logger := testObservability(ctrl)
			c := NewEVAClient(time.Second, tracer, monitor, logger)

			err := c.DeleteGuestAccount(context.Background(), evaConfig(srv.URL), "guest-1")

			if test.expectError {
				var remoteErr *RemoteError
				if !errors.As(err, &remoteErr) {
					t.Fatalf("expected RemoteError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
