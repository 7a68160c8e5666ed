// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/provisioning-service/internal/http/types"
	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/storage"
	"github.com/canonical/provisioning-service/internal/tracing"
	ttypes "github.com/canonical/provisioning-service/internal/types"
)

// API exposes the provisioning trigger endpoints. The inviting application
// calls them after committing a local change, the handlers hydrate the
// affected entities and hand them to the orchestrator.
type API struct {
	service    ServiceInterface
	store      DatabaseInterface
	middleware *AuthMiddleware

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	if a.middleware != nil {
		mux = mux.With(a.middleware.AuthMiddleware).(*chi.Mux)
	}

	mux.Post("/api/v0/provisioning/users/{user_id}", a.handleNewUser)
	mux.Put("/api/v0/provisioning/users/{user_id}", a.handleUpdateUser)
	mux.Delete("/api/v0/provisioning/users/{user_id}", a.handleDeleteUser)

	mux.Post("/api/v0/provisioning/roles/{role_id}", a.handleNewGroup)
	mux.Delete("/api/v0/provisioning/roles/{role_id}", a.handleDeleteGroup)

	mux.Post("/api/v0/provisioning/roles/{role_id}/users/{user_id}", a.handleAddMember)
	mux.Delete("/api/v0/provisioning/roles/{role_id}/users/{user_id}", a.handleRemoveMember)
}

func (a *API) handleNewUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := a.store.GetUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.NewUser(r.Context(), user); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeOK(w, fmt.Sprintf("Provisioned user %s", user.ID))
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := a.store.GetUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.UpdateUser(r.Context(), user); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeOK(w, fmt.Sprintf("Updated user %s", user.ID))
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := a.store.GetUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	ignoreFailures := r.URL.Query().Get("ignore_failures") == "true"

	if err := a.service.DeleteUser(r.Context(), user, ignoreFailures); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeOK(w, fmt.Sprintf("Deprovisioned user %s", user.ID))
}

func (a *API) handleNewGroup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	role, err := a.store.GetRole(r.Context(), chi.URLParam(r, "role_id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.NewGroup(r.Context(), role); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeOK(w, fmt.Sprintf("Provisioned group for role %s", role.ID))
}

func (a *API) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	role, err := a.store.GetRole(r.Context(), chi.URLParam(r, "role_id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.DeleteGroup(r.Context(), role); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeOK(w, fmt.Sprintf("Deprovisioned group for role %s", role.ID))
}

func (a *API) handleAddMember(w http.ResponseWriter, r *http.Request) {
	a.handleMembership(w, r, OperationAdd)
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	a.handleMembership(w, r, OperationRemove)
}

func (a *API) handleMembership(w http.ResponseWriter, r *http.Request, op OperationType) {
	w.Header().Set("Content-Type", "application/json")

	roleID := chi.URLParam(r, "role_id")
	userID := chi.URLParam(r, "user_id")

	userRole, err := a.findUserRole(r, roleID, userID, op)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.UpdateGroupMembership(r.Context(), userRole, op); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeOK(w, fmt.Sprintf("Applied membership %s for user %s on role %s", op, userID, roleID))
}

// findUserRole locates the membership row for the pair. On removal the local
// row is usually gone already, so a synthetic membership is built from the
// hydrated user and role instead.
func (a *API) findUserRole(r *http.Request, roleID, userID string, op OperationType) (*ttypes.UserRole, error) {
	members, err := a.store.ListRoleMembers(r.Context(), roleID)
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		if member.UserID == userID {
			return member, nil
		}
	}

	if op == OperationAdd {
		return nil, fmt.Errorf("%w: user %s holds no membership on role %s", storage.ErrNotFound, userID, roleID)
	}

	user, err := a.store.GetUser(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	role, err := a.store.GetRole(r.Context(), roleID)
	if err != nil {
		return nil, err
	}

	return &ttypes.UserRole{UserID: user.ID, RoleID: role.ID, User: user, Role: role}, nil
}

func (a *API) writeOK(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(
		types.Response{
			Message: message,
			Status:  http.StatusOK,
		},
	)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var remoteErr *RemoteError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrNoValidEndDate):
		status = http.StatusBadRequest
	case errors.As(err, &remoteErr):
		status = http.StatusBadGateway
		message = fmt.Sprintf("remote provisioning failed, reference %s", remoteErr.Reference)
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(
		types.Response{
			Message: message,
			Status:  status,
		},
	)
}

func NewAPI(
	service ServiceInterface,
	store DatabaseInterface,
	middleware *AuthMiddleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.store = store
	if middleware != nil {
		a.middleware = middleware
	}

	a.monitor = monitor
	a.tracer = tracer
	a.logger = logger

	return a
}
