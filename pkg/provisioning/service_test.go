// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"testing"
	"time"

	trace "go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/provisioning-service/internal/manage"
	"github.com/canonical/provisioning-service/internal/storage"
	"github.com/canonical/provisioning-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_manage.go -source=../../internal/manage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_provisioning.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_storage.go github.com/canonical/provisioning-service/internal/storage StorageInterface

type serviceMocks struct {
	db      *MockDatabaseInterface
	dir     *MockManageInterface
	scim    *MockSCIMClientInterface
	eva     *MockEVAClientInterface
	graph   *MockGraphClientInterface
	email   *MockEmailProvisionerInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		db:      NewMockDatabaseInterface(ctrl),
		dir:     NewMockManageInterface(ctrl),
		scim:    NewMockSCIMClientInterface(ctrl),
		eva:     NewMockEVAClientInterface(ctrl),
		graph:   NewMockGraphClientInterface(ctrl),
		email:   NewMockEmailProvisionerInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(m.db, m.dir, m.scim, m.eva, m.graph, m.email, m.tracer, m.monitor, m.logger)
	return s, m
}

func scimRecord(id string, putMethod bool, apps ...string) manage.Record {
	return manage.Record{
		"id": id,
		"data": map[string]any{
			"entityid":     "https://scim.example.org/" + id,
			"applications": appList(apps),
			"metaDataFields": map[string]any{
				"provisioning_type":           "scim",
				"scim_url":                    "https://scim.example.org",
				"scim_bearer_token":           "secret",
				"scim_update_role_put_method": putMethod,
			},
		},
	}
}

func evaRecord(id string, duration int, apps ...string) manage.Record {
	return manage.Record{
		"id": id,
		"data": map[string]any{
			"entityid":     "https://eva.example.org/" + id,
			"applications": appList(apps),
			"metaDataFields": map[string]any{
				"provisioning_type":          "eva",
				"eva_url":                    "https://eva.example.org",
				"eva_token":                  "secret",
				"eva_guest_account_duration": duration,
			},
		},
	}
}

func graphRecord(id string, apps ...string) manage.Record {
	return manage.Record{
		"id": id,
		"data": map[string]any{
			"entityid":     "https://graph.example.org/" + id,
			"applications": appList(apps),
			"metaDataFields": map[string]any{
				"provisioning_type": "graph",
				"graph_client_id":   "client",
				"graph_secret":      "secret",
				"graph_tenant":      "tenant",
			},
		},
	}
}

func mailRecord(id string, apps ...string) manage.Record {
	return manage.Record{
		"id": id,
		"data": map[string]any{
			"entityid":     "https://mail.example.org/" + id,
			"applications": appList(apps),
			"metaDataFields": map[string]any{
				"provisioning_type": "mail",
				"provisioning_mail": "admin@example.org",
			},
		},
	}
}

func appList(apps []string) []any {
	out := make([]any, 0, len(apps))
	for _, a := range apps {
		out = append(out, a)
	}
	return out
}

func testUser(roles ...*types.UserRole) *types.User {
	return &types.User{
		ID:         "user-1",
		Sub:        "urn:collab:person:example.org:jdoe",
		Email:      "jdoe@example.org",
		GivenName:  "John",
		FamilyName: "Doe",
		UserRoles:  roles,
	}
}

func testRole(id string, apps ...string) *types.Role {
	return &types.Role{
		ID:             id,
		Name:           "Role " + id,
		Identifier:     "urn:role:" + id,
		ApplicationIDs: apps,
	}
}

func membership(user *types.User, role *types.Role, endDate *time.Time) *types.UserRole {
	return &types.UserRole{
		ID:        "ur-" + role.ID,
		UserID:    user.ID,
		RoleID:    role.ID,
		Authority: types.AuthorityGuest,
		EndDate:   endDate,
		User:      user,
		Role:      role,
	}
}

func future(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}

func TestServiceNewUserSCIM(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	user.UserRoles = []*types.UserRole{membership(user, role, nil)}
	cfg := scimRecord("manage-1", false, "app-1")

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return([]manage.Record{cfg}, nil)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(nil, storage.ErrNotFound)
	m.scim.EXPECT().CreateUser(gomock.Any(), gomock.Any(), user).Return("remote-1", nil)
	m.db.EXPECT().UpsertRemoteProvisionedUser(gomock.Any(), &types.RemoteProvisionedUser{
		UserID:           user.ID,
		ManageID:         "manage-1",
		RemoteIdentifier: "remote-1",
	}).Return(&types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}, nil)

	if err := s.NewUser(context.Background(), user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceNewUserAlreadyProvisioned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	user.UserRoles = []*types.UserRole{membership(user, role, nil)}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return([]manage.Record{scimRecord("manage-1", false, "app-1")}, nil)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(
		&types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}, nil,
	)
	// No adapter call, no upsert: the remote already holds the user.

	if err := s.NewUser(context.Background(), user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceNewUserMailAlwaysNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	user.UserRoles = []*types.UserRole{membership(user, role, nil)}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return([]manage.Record{mailRecord("manage-1", "app-1")}, nil)
	// Mail notifications are never deduplicated: no link lookup happens.
	m.email.EXPECT().SendOperation(gomock.Any(), gomock.Any(), "create user", gomock.Any()).Return("mail-abc", nil)
	m.db.EXPECT().UpsertRemoteProvisionedUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, link *types.RemoteProvisionedUser) (*types.RemoteProvisionedUser, error) {
			if link.RemoteIdentifier != "mail-abc" {
				t.Fatalf("expected mail placeholder identifier, got %s", link.RemoteIdentifier)
			}
			return link, nil
		},
	)

	if err := s.NewUser(context.Background(), user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceNewUserEVAWithoutEndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	user.UserRoles = []*types.UserRole{membership(user, role, nil)}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return([]manage.Record{evaRecord("manage-1", 30, "app-1")}, nil)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(nil, storage.ErrNotFound)
	// No network call is issued: the guest account would be born expired.

	err := s.NewUser(context.Background(), user)
	if !errors.Is(err, ErrNoValidEndDate) {
		t.Fatalf("expected ErrNoValidEndDate, got %v", err)
	}
}

func TestServiceNewUserEVA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	endDate := future(10)
	user.UserRoles = []*types.UserRole{membership(user, role, endDate)}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return([]manage.Record{evaRecord("manage-1", 30, "app-1")}, nil)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(nil, storage.ErrNotFound)
	m.eva.EXPECT().CreateGuestAccount(gomock.Any(), gomock.Any(), user, *endDate).Return("guest-1", nil)
	m.db.EXPECT().UpsertRemoteProvisionedUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, link *types.RemoteProvisionedUser) (*types.RemoteProvisionedUser, error) {
			return link, nil
		},
	)

	if err := s.NewUser(context.Background(), user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateUserSkipsUnprovisionedRemotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	user.UserRoles = []*types.UserRole{membership(user, role, nil)}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", false, "app-1"), scimRecord("manage-2", false, "app-1")}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(
		&types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-2").Return(nil, storage.ErrNotFound)
	m.scim.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), user, "remote-1").Return(nil)

	if err := s.UpdateUser(context.Background(), user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceDeleteUserRemovesMembershipsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role1 := testRole("role-1", "app-1")
	role2 := testRole("role-2", "app-1")
	user := testUser()
	user.UserRoles = []*types.UserRole{membership(user, role1, nil), membership(user, role2, nil)}

	userLink := &types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", false, "app-1")}, nil,
	).Times(3)
	m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), "role-1", "manage-1").Return(
		&types.RemoteProvisionedGroup{RoleID: "role-1", ManageID: "manage-1", RemoteIdentifier: "group-1"}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), "role-2", "manage-1").Return(
		&types.RemoteProvisionedGroup{RoleID: "role-2", ManageID: "manage-1", RemoteIdentifier: "group-2"}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(userLink, nil).Times(2)
	m.db.EXPECT().ListRemoteProvisionedUsers(gomock.Any(), user.ID).Return([]*types.RemoteProvisionedUser{userLink}, nil)

	patch1 := m.scim.EXPECT().PatchGroupMembers(gomock.Any(), gomock.Any(), "group-1", OperationRemove, "remote-1").Return(nil)
	patch2 := m.scim.EXPECT().PatchGroupMembers(gomock.Any(), gomock.Any(), "group-2", OperationRemove, "remote-1").Return(nil)
	del := m.scim.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), "remote-1").Return(nil)
	gomock.InOrder(patch1, patch2, del)

	m.db.EXPECT().DeleteRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(nil)

	if err := s.DeleteUser(context.Background(), user, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceDeleteUserIgnoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	user := testUser()

	link1 := &types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}
	link2 := &types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-2", RemoteIdentifier: "remote-2"}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.db.EXPECT().ListRemoteProvisionedUsers(gomock.Any(), user.ID).Return([]*types.RemoteProvisionedUser{link1, link2}, nil)

	// Neither link resolves to a known configuration; both are logged and
	// left in place without failing the operation.
	if err := s.DeleteUser(context.Background(), user, true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceDeleteUserRemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	user.UserRoles = []*types.UserRole{membership(user, role, nil)}
	userLink := &types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}
	remoteErr := &RemoteError{Reference: "ref-1"}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", false, "app-1")}, nil,
	).Times(2)
	m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), "role-1", "manage-1").Return(
		&types.RemoteProvisionedGroup{RoleID: "role-1", ManageID: "manage-1", RemoteIdentifier: "group-1"}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(userLink, nil)
	m.scim.EXPECT().PatchGroupMembers(gomock.Any(), gomock.Any(), "group-1", OperationRemove, "remote-1").Return(nil)
	m.db.EXPECT().ListRemoteProvisionedUsers(gomock.Any(), user.ID).Return([]*types.RemoteProvisionedUser{userLink}, nil)
	m.scim.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), "remote-1").Return(remoteErr)
	// The link stays in the ledger so a later sweep can retry.

	err := s.DeleteUser(context.Background(), user, false)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
}

func TestServiceNewGroupBootstrapIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	groupLink := &types.RemoteProvisionedGroup{RoleID: role.ID, ManageID: "manage-1", RemoteIdentifier: "group-1"}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", false, "app-1")}, nil,
	).Times(2)

	first := m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(nil, storage.ErrNotFound)
	m.scim.EXPECT().CreateGroup(gomock.Any(), gomock.Any(), role).Return("group-1", nil)
	m.db.EXPECT().UpsertRemoteProvisionedGroup(gomock.Any(), gomock.Any()).Return(groupLink, nil)
	second := m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(groupLink, nil)
	gomock.InOrder(first, second)

	if err := s.NewGroup(context.Background(), role); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// Second call finds the link and creates nothing.
	if err := s.NewGroup(context.Background(), role); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceNewGroupSkipsEVAAndGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{evaRecord("manage-1", 30, "app-1"), graphRecord("manage-2", "app-1")}, nil,
	)
	// Neither remote has a group concept: no lookups, no calls.

	if err := s.NewGroup(context.Background(), role); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateGroupMembershipPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	userRole := membership(user, role, nil)
	user.UserRoles = []*types.UserRole{userRole}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", false, "app-1")}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(
		&types.RemoteProvisionedGroup{RoleID: role.ID, ManageID: "manage-1", RemoteIdentifier: "group-1"}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(
		&types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}, nil,
	)
	m.scim.EXPECT().PatchGroupMembers(gomock.Any(), gomock.Any(), "group-1", OperationAdd, "remote-1").Return(nil)

	if err := s.UpdateGroupMembership(context.Background(), userRole, OperationAdd); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateGroupMembershipPutExcludesRemovedMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	removed := testUser()
	removedMembership := membership(removed, role, nil)
	removed.UserRoles = []*types.UserRole{removedMembership}

	other := &types.User{ID: "user-2", Email: "other@example.org"}
	otherMembership := membership(other, role, nil)
	otherMembership.ID = "ur-other"
	otherMembership.UserID = other.ID

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", true, "app-1")}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(
		&types.RemoteProvisionedGroup{RoleID: role.ID, ManageID: "manage-1", RemoteIdentifier: "group-1"}, nil,
	)
	m.db.EXPECT().ListRoleMembers(gomock.Any(), role.ID).Return(
		[]*types.UserRole{removedMembership, otherMembership}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), other.ID, "manage-1").Return(
		&types.RemoteProvisionedUser{UserID: other.ID, ManageID: "manage-1", RemoteIdentifier: "remote-2"}, nil,
	)
	m.scim.EXPECT().ReplaceGroup(gomock.Any(), gomock.Any(), role, "group-1", []string{"remote-2"}).Return(nil)

	if err := s.UpdateGroupMembership(context.Background(), removedMembership, OperationRemove); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateGroupMembershipPutProvisionsMissingMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	userRole := membership(user, role, nil)
	user.UserRoles = []*types.UserRole{userRole}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", true, "app-1")}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(
		&types.RemoteProvisionedGroup{RoleID: role.ID, ManageID: "manage-1", RemoteIdentifier: "group-1"}, nil,
	)
	m.db.EXPECT().ListRoleMembers(gomock.Any(), role.ID).Return([]*types.UserRole{userRole}, nil)
	// The member was never provisioned: it is created on the fly before the
	// replacement payload is built.
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(nil, storage.ErrNotFound).Times(2)
	m.scim.EXPECT().CreateUser(gomock.Any(), gomock.Any(), user).Return("remote-1", nil)
	m.db.EXPECT().UpsertRemoteProvisionedUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, link *types.RemoteProvisionedUser) (*types.RemoteProvisionedUser, error) {
			return link, nil
		},
	)
	m.scim.EXPECT().ReplaceGroup(gomock.Any(), gomock.Any(), role, "group-1", []string{"remote-1"}).Return(nil)

	if err := s.UpdateGroupMembership(context.Background(), userRole, OperationAdd); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateGroupMembershipBootstrapsGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	userRole := membership(user, role, nil)
	user.UserRoles = []*types.UserRole{userRole}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", false, "app-1")}, nil,
	)
	gomock.InOrder(
		m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(nil, storage.ErrNotFound),
		m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(nil, storage.ErrNotFound),
	)
	m.scim.EXPECT().CreateGroup(gomock.Any(), gomock.Any(), role).Return("group-1", nil)
	m.db.EXPECT().UpsertRemoteProvisionedGroup(gomock.Any(), gomock.Any()).Return(
		&types.RemoteProvisionedGroup{RoleID: role.ID, ManageID: "manage-1", RemoteIdentifier: "group-1"}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(
		&types.RemoteProvisionedUser{UserID: user.ID, ManageID: "manage-1", RemoteIdentifier: "remote-1"}, nil,
	)
	m.scim.EXPECT().PatchGroupMembers(gomock.Any(), gomock.Any(), "group-1", OperationAdd, "remote-1").Return(nil)

	if err := s.UpdateGroupMembership(context.Background(), userRole, OperationAdd); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateGroupMembershipGraphEnsuresUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	userRole := membership(user, role, nil)
	user.UserRoles = []*types.UserRole{userRole}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{graphRecord("manage-1", "app-1")}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(nil, storage.ErrNotFound).Times(2)
	m.graph.EXPECT().CreateUser(gomock.Any(), gomock.Any(), user).Return("obj-1", nil)
	m.db.EXPECT().UpsertRemoteProvisionedUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, link *types.RemoteProvisionedUser) (*types.RemoteProvisionedUser, error) {
			return link, nil
		},
	)

	if err := s.UpdateGroupMembership(context.Background(), userRole, OperationAdd); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateGroupMembershipEVASkipsIneligibleMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")
	user := testUser()
	userRole := membership(user, role, nil) // no end date, not guest-eligible
	user.UserRoles = []*types.UserRole{userRole}

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{evaRecord("manage-1", 30, "app-1")}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedUser(gomock.Any(), user.ID, "manage-1").Return(nil, storage.ErrNotFound).Times(2)
	// Lazy provisioning fails the validity window check; the member is
	// skipped without surfacing an error.

	if err := s.UpdateGroupMembership(context.Background(), userRole, OperationAdd); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceDeleteGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)

	role := testRole("role-1", "app-1")

	m.dir.EXPECT().ProvisioningRecords(gomock.Any(), []string{"app-1"}).Return(
		[]manage.Record{scimRecord("manage-1", false, "app-1")}, nil,
	)
	m.db.EXPECT().GetRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(
		&types.RemoteProvisionedGroup{RoleID: role.ID, ManageID: "manage-1", RemoteIdentifier: "group-1"}, nil,
	)
	m.scim.EXPECT().DeleteGroup(gomock.Any(), gomock.Any(), "group-1").Return(nil)
	m.db.EXPECT().DeleteRemoteProvisionedGroup(gomock.Any(), role.ID, "manage-1").Return(nil)

	if err := s.DeleteGroup(context.Background(), role); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceEvaValidTill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newServiceWithMocks(ctrl)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	cfg := &Config{
		ID:             "manage-1",
		EntityID:       "https://eva.example.org",
		Protocol:       ProtocolEVA,
		ApplicationIDs: []string{"app-1"},
		EVA:            &EVAConfig{URL: "https://eva.example.org", Token: "t", GuestAccountDuration: 30},
	}

	date := func(days int) *time.Time {
		t := now.AddDate(0, 0, days)
		return &t
	}

	role := testRole("role-1", "app-1")
	unrelated := testRole("role-2", "other-app")

	tests := []struct {
		name string

		memberships []*types.UserRole

		expected    time.Time
		expectedErr error
	}{
		{
			name:        "no memberships",
			memberships: nil,
			expectedErr: ErrNoValidEndDate,
		},
		{
			name: "no end date",
			memberships: []*types.UserRole{
				{Role: role},
			},
			expectedErr: ErrNoValidEndDate,
		},
		{
			name: "end date in the past",
			memberships: []*types.UserRole{
				{Role: role, EndDate: date(-1)},
			},
			expectedErr: ErrNoValidEndDate,
		},
		{
			name: "unrelated application",
			memberships: []*types.UserRole{
				{Role: unrelated, EndDate: date(10)},
			},
			expectedErr: ErrNoValidEndDate,
		},
		{
			name: "single future end date",
			memberships: []*types.UserRole{
				{Role: role, EndDate: date(10)},
			},
			expected: *date(10),
		},
		{
			name: "furthest end date wins",
			memberships: []*types.UserRole{
				{Role: role, EndDate: date(5)},
				{Role: role, EndDate: date(20)},
			},
			expected: *date(20),
		},
		{
			name: "capped by guest account duration",
			memberships: []*types.UserRole{
				{Role: role, EndDate: date(90)},
			},
			expected: *date(30),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			user := testUser()
			user.UserRoles = test.memberships

			validTill, err := s.evaValidTill(cfg, user, now)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !validTill.Equal(test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, validTill)
			}
		})
	}
}
