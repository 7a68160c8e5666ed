// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/manage"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/storage"
	"github.com/canonical/provisioning-service/internal/tracing"
	"github.com/canonical/provisioning-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service is the provisioning orchestrator. Every lifecycle operation fans
// out across the provisioning configurations applicable to the affected
// entity, drives the matching protocol adapter and keeps the remote link
// ledger in sync with the outcome.
type Service struct {
	db        DatabaseInterface
	directory manage.ManageInterface

	scim  SCIMClientInterface
	eva   EVAClientInterface
	graph GraphClientInterface
	email EmailProvisionerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewUser provisions the user on every applicable remote. Remotes that
// already hold a link are left alone; mail remotes are notified
// unconditionally since notifications are not deduplicated.
func (s *Service) NewUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.NewUser")
	defer span.End()

	configs, err := s.configsForUser(ctx, user)
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		if _, err := s.provisionUser(ctx, cfg, user, true); err != nil {
			return err
		}
	}

	return nil
}

// UpdateUser re-sends the user to every remote that holds a link.
func (s *Service) UpdateUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.UpdateUser")
	defer span.End()

	configs, err := s.configsForUser(ctx, user)
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		link, err := s.db.GetRemoteProvisionedUser(ctx, user.ID, cfg.ID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		switch cfg.Protocol {
		case ProtocolSCIM:
			err = s.scim.UpdateUser(ctx, cfg, user, link.RemoteIdentifier)
		case ProtocolEVA:
			validTill, windowErr := s.evaValidTill(cfg, user, time.Now())
			if windowErr != nil {
				s.logger.Infof("skipping eva update for user %s on %s: %v", user.ID, cfg.EntityID, windowErr)
				continue
			}
			err = s.eva.UpdateGuestAccount(ctx, cfg, user, link.RemoteIdentifier, validTill)
		case ProtocolGraph:
			err = s.graph.UpdateUser(ctx, cfg, user, link.RemoteIdentifier)
		case ProtocolMail:
			_, err = s.email.SendOperation(ctx, cfg, "update user", newUserResource(user, link.RemoteIdentifier))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// DeleteUser deprovisions the user everywhere: membership removals are
// issued for every held role before the user delete itself, since some
// remotes reject deleting a user that still appears as a group member.
// With ignoreFailures set, individual remote failures are logged and the
// remaining remotes are still processed; the cleanup sweep uses this.
func (s *Service) DeleteUser(ctx context.Context, user *types.User, ignoreFailures bool) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.DeleteUser")
	defer span.End()

	for _, userRole := range user.UserRoles {
		if userRole.User == nil {
			userRole.User = user
		}
		if err := s.UpdateGroupMembership(ctx, userRole, OperationRemove); err != nil {
			if !ignoreFailures {
				return err
			}
			s.logger.Warnf("ignoring membership deprovision failure for user %s: %v", user.ID, err)
		}
	}

	configs, err := s.configsForUser(ctx, user)
	if err != nil {
		return err
	}
	byID := make(map[string]*Config, len(configs))
	for _, cfg := range configs {
		byID[cfg.ID] = cfg
	}

	links, err := s.db.ListRemoteProvisionedUsers(ctx, user.ID)
	if err != nil {
		return err
	}

	for _, link := range links {
		cfg, ok := byID[link.ManageID]
		if !ok {
			s.logger.Warnf("no provisioning configuration for remote link %s of user %s, leaving link in place", link.ManageID, user.ID)
			continue
		}

		switch cfg.Protocol {
		case ProtocolSCIM:
			err = s.scim.DeleteUser(ctx, cfg, link.RemoteIdentifier)
		case ProtocolEVA:
			err = s.eva.DeleteGuestAccount(ctx, cfg, link.RemoteIdentifier)
		case ProtocolGraph:
			err = s.graph.DeleteUser(ctx, cfg, link.RemoteIdentifier)
		case ProtocolMail:
			_, err = s.email.SendOperation(ctx, cfg, "delete user", newUserResource(user, link.RemoteIdentifier))
		}
		if err != nil {
			if !ignoreFailures {
				return err
			}
			s.logger.Warnf("ignoring user deprovision failure for user %s on %s: %v", user.ID, cfg.EntityID, err)
			continue
		}

		if err := s.db.DeleteRemoteProvisionedUser(ctx, user.ID, link.ManageID); err != nil {
			return err
		}
	}

	return nil
}

// NewGroup creates the remote group, with empty membership, on every
// applicable remote that does not hold a link yet.
func (s *Service) NewGroup(ctx context.Context, role *types.Role) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.NewGroup")
	defer span.End()

	configs, err := s.configsForApps(ctx, role.ApplicationIDs)
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		if _, err := s.provisionGroup(ctx, cfg, role); err != nil {
			return err
		}
	}

	return nil
}

// UpdateGroupMembership reconciles one membership change against every
// applicable remote. Groups are bootstrapped on first use, and the update
// strategy follows the remote's capabilities: a full membership replace for
// remotes without PATCH support, a single member operation otherwise.
func (s *Service) UpdateGroupMembership(ctx context.Context, userRole *types.UserRole, op OperationType) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.UpdateGroupMembership")
	defer span.End()

	if userRole.User == nil || userRole.Role == nil {
		return fmt.Errorf("user role %s is not hydrated", userRole.ID)
	}

	configs, err := s.configsForApps(ctx, userRole.Role.ApplicationIDs)
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		if err := s.updateGroupForConfig(ctx, cfg, userRole, op); err != nil {
			return err
		}
	}

	return nil
}

// DeleteGroup removes the remote group on every remote that holds a link.
func (s *Service) DeleteGroup(ctx context.Context, role *types.Role) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.DeleteGroup")
	defer span.End()

	configs, err := s.configsForApps(ctx, role.ApplicationIDs)
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		link, err := s.db.GetRemoteProvisionedGroup(ctx, role.ID, cfg.ID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		switch cfg.Protocol {
		case ProtocolSCIM:
			err = s.scim.DeleteGroup(ctx, cfg, link.RemoteIdentifier)
		case ProtocolMail:
			_, err = s.email.SendOperation(ctx, cfg, "delete group", newGroupResource(role, link.RemoteIdentifier, nil))
		default:
			continue
		}
		if err != nil {
			return err
		}

		if err := s.db.DeleteRemoteProvisionedGroup(ctx, role.ID, cfg.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) updateGroupForConfig(ctx context.Context, cfg *Config, userRole *types.UserRole, op OperationType) error {
	role := userRole.Role

	// EVA and Graph have no group concept: adding a member only means
	// making sure the account exists on the remote.
	if cfg.Protocol == ProtocolEVA || cfg.Protocol == ProtocolGraph {
		if op == OperationAdd {
			s.resolveUserLink(ctx, cfg, userRole.User, true)
		}
		return nil
	}

	groupLink, err := s.db.GetRemoteProvisionedGroup(ctx, role.ID, cfg.ID)
	if errors.Is(err, storage.ErrNotFound) {
		groupLink, err = s.provisionGroup(ctx, cfg, role)
	}
	if err != nil {
		return err
	}

	if cfg.Protocol == ProtocolSCIM && cfg.SCIM.UpdateRolePutMethod {
		return s.replaceGroupMembers(ctx, cfg, userRole, groupLink, op)
	}

	// Incremental update: resolve only the affected member. Removal of a
	// member that was never provisioned is a no-op, and a member that
	// cannot be lazily provisioned is skipped, membership propagation is
	// best-effort per remote.
	userLink, ok := s.resolveUserLink(ctx, cfg, userRole.User, op == OperationAdd)
	if !ok {
		return nil
	}

	switch cfg.Protocol {
	case ProtocolSCIM:
		return s.scim.PatchGroupMembers(ctx, cfg, groupLink.RemoteIdentifier, op, userLink.RemoteIdentifier)
	case ProtocolMail:
		operation := fmt.Sprintf("%s member of group %s", op, role.Name)
		_, err := s.email.SendOperation(ctx, cfg, operation, newPatchBody(op, userLink.RemoteIdentifier))
		return err
	}

	return nil
}

// replaceGroupMembers recomputes the full current membership of the role and
// sends it as one group replacement. Recomputing on every write costs more
// requests but keeps remotes without PATCH support free of drift.
func (s *Service) replaceGroupMembers(ctx context.Context, cfg *Config, userRole *types.UserRole, groupLink *types.RemoteProvisionedGroup, op OperationType) error {
	role := userRole.Role

	members, err := s.db.ListRoleMembers(ctx, role.ID)
	if err != nil {
		return err
	}

	memberIDs := make([]string, 0, len(members))
	seen := false
	for _, member := range members {
		if member.UserID == userRole.UserID {
			seen = true
			if op == OperationRemove {
				continue
			}
		}
		link, ok := s.resolveUserLink(ctx, cfg, member.User, true)
		if !ok {
			continue
		}
		memberIDs = append(memberIDs, link.RemoteIdentifier)
	}

	// The membership row for an Add may not be visible yet when the caller
	// runs ahead of its own transaction; include the affected user anyway.
	if op == OperationAdd && !seen {
		if link, ok := s.resolveUserLink(ctx, cfg, userRole.User, true); ok {
			memberIDs = append(memberIDs, link.RemoteIdentifier)
		}
	}

	if cfg.Protocol == ProtocolMail {
		_, err := s.email.SendOperation(ctx, cfg, "replace group", newGroupResource(role, groupLink.RemoteIdentifier, memberIDs))
		return err
	}

	return s.scim.ReplaceGroup(ctx, cfg, role, groupLink.RemoteIdentifier, memberIDs)
}

// provisionUser creates the user on one remote if no link exists yet and
// records the returned remote identifier. With notifyMail set, mail remotes
// are notified even when a link already exists.
func (s *Service) provisionUser(ctx context.Context, cfg *Config, user *types.User, notifyMail bool) (*types.RemoteProvisionedUser, error) {
	if cfg.Protocol != ProtocolMail || !notifyMail {
		link, err := s.db.GetRemoteProvisionedUser(ctx, user.ID, cfg.ID)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	var remoteID string
	var err error

	switch cfg.Protocol {
	case ProtocolSCIM:
		remoteID, err = s.scim.CreateUser(ctx, cfg, user)
	case ProtocolEVA:
		validTill, windowErr := s.evaValidTill(cfg, user, time.Now())
		if windowErr != nil {
			return nil, windowErr
		}
		remoteID, err = s.eva.CreateGuestAccount(ctx, cfg, user, validTill)
	case ProtocolGraph:
		remoteID, err = s.graph.CreateUser(ctx, cfg, user)
	case ProtocolMail:
		remoteID, err = s.email.SendOperation(ctx, cfg, "create user", newUserResource(user, ""))
	default:
		return nil, fmt.Errorf("unknown protocol %q for %s", cfg.Protocol, cfg.EntityID)
	}
	if err != nil {
		return nil, err
	}

	return s.db.UpsertRemoteProvisionedUser(ctx, &types.RemoteProvisionedUser{
		UserID:           user.ID,
		ManageID:         cfg.ID,
		RemoteIdentifier: remoteID,
	})
}

// provisionGroup creates the remote group if no link exists yet. EVA and
// Graph remotes have no group concept and are skipped.
func (s *Service) provisionGroup(ctx context.Context, cfg *Config, role *types.Role) (*types.RemoteProvisionedGroup, error) {
	if cfg.Protocol == ProtocolEVA || cfg.Protocol == ProtocolGraph {
		return nil, nil
	}

	link, err := s.db.GetRemoteProvisionedGroup(ctx, role.ID, cfg.ID)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	var remoteID string
	switch cfg.Protocol {
	case ProtocolSCIM:
		remoteID, err = s.scim.CreateGroup(ctx, cfg, role)
	case ProtocolMail:
		remoteID, err = s.email.SendOperation(ctx, cfg, "create group", newGroupResource(role, "", nil))
	}
	if err != nil {
		return nil, err
	}

	return s.db.UpsertRemoteProvisionedGroup(ctx, &types.RemoteProvisionedGroup{
		RoleID:           role.ID,
		ManageID:         cfg.ID,
		RemoteIdentifier: remoteID,
	})
}

// resolveUserLink returns the remote link for a user on one remote,
// provisioning the user on the fly when lazy is set. Failures are logged
// and reported as a skip, never raised.
func (s *Service) resolveUserLink(ctx context.Context, cfg *Config, user *types.User, lazy bool) (*types.RemoteProvisionedUser, bool) {
	link, err := s.db.GetRemoteProvisionedUser(ctx, user.ID, cfg.ID)
	if err == nil {
		return link, true
	}
	if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("failed to resolve remote link for user %s on %s: %v", user.ID, cfg.EntityID, err)
		return nil, false
	}

	if !lazy {
		return nil, false
	}

	link, err = s.provisionUser(ctx, cfg, user, false)
	if err != nil {
		s.logger.Infof("skipping member %s for %s: %v", user.ID, cfg.EntityID, err)
		return nil, false
	}

	return link, true
}

// evaValidTill computes the guest account validity window: the furthest
// future end date across the user's memberships applicable to this remote,
// capped by the configured guest account duration. No future end date means
// the account would be born expired, which is refused before any network
// call is made.
func (s *Service) evaValidTill(cfg *Config, user *types.User, now time.Time) (time.Time, error) {
	var validTill time.Time

	for _, userRole := range user.UserRoles {
		if userRole.Role == nil || userRole.EndDate == nil {
			continue
		}
		if !appsOverlap(userRole.Role.ApplicationIDs, cfg.ApplicationIDs) {
			continue
		}
		if userRole.EndDate.After(now) && userRole.EndDate.After(validTill) {
			validTill = *userRole.EndDate
		}
	}

	if validTill.IsZero() {
		return time.Time{}, fmt.Errorf("%w: user %s on %s", ErrNoValidEndDate, user.ID, cfg.EntityID)
	}

	if cfg.EVA.GuestAccountDuration > 0 {
		cap := now.AddDate(0, 0, cfg.EVA.GuestAccountDuration)
		if validTill.After(cap) {
			validTill = cap
		}
	}

	return validTill, nil
}

func (s *Service) configsForUser(ctx context.Context, user *types.User) ([]*Config, error) {
	apps := make([]string, 0)
	for _, userRole := range user.UserRoles {
		if userRole.Role != nil {
			apps = append(apps, userRole.Role.ApplicationIDs...)
		}
	}

	return s.configsForApps(ctx, apps)
}

func (s *Service) configsForApps(ctx context.Context, applicationIDs []string) ([]*Config, error) {
	apps := removeDuplicates(applicationIDs)
	if len(apps) == 0 {
		return nil, nil
	}

	records, err := s.directory.ProvisioningRecords(ctx, apps)
	if err != nil {
		return nil, err
	}

	configs := make([]*Config, 0, len(records))
	for _, record := range records {
		cfg, err := NewConfig(record)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}

func appsOverlap(a, b []string) bool {
	for _, x := range a {
		if slices.Contains(b, x) {
			return true
		}
	}
	return false
}

func removeDuplicates[S ~[]E, E cmp.Ordered](s S) S {
	slices.Sort(s)
	return slices.Compact(s)
}

func NewService(
	db DatabaseInterface,
	directory manage.ManageInterface,
	scim SCIMClientInterface,
	eva EVAClientInterface,
	graph GraphClientInterface,
	email EmailProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.db = db
	s.directory = directory

	s.scim = scim
	s.eva = eva
	s.graph = graph
	s.email = email

	s.monitor = monitor
	s.tracer = tracer
	s.logger = logger

	return s
}
