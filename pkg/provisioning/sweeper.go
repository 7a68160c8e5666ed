// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"time"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/storage"
	"github.com/canonical/provisioning-service/internal/types"
)

// Sweeper deprovisions what the application no longer grants: memberships
// past their end date are removed from the remote groups, and users left
// without any active membership are deleted remotely altogether. Remote
// failures are logged and skipped so one broken remote cannot stall the
// whole sweep; the affected links stay in the ledger for the next run.
type Sweeper struct {
	store   storage.StorageInterface
	service ServiceInterface

	logger logging.LoggerInterface
}

func (s *Sweeper) Run(ctx context.Context, before time.Time) error {
	expired, err := s.store.ListExpiredUserRoles(ctx, before)
	if err != nil {
		return err
	}
	s.logger.Infof("found %d expired memberships", len(expired))

	byUser := make(map[string][]*types.UserRole)
	for _, userRole := range expired {
		byUser[userRole.UserID] = append(byUser[userRole.UserID], userRole)
	}

	for userID, memberships := range byUser {
		user, err := s.store.GetUser(ctx, userID)
		if err != nil {
			s.logger.Errorf("skipping user %s: %v", userID, err)
			continue
		}

		if allExpired(user, before) {
			s.logger.Infof("deprovisioning user %s, no active memberships left", userID)
			if err := s.service.DeleteUser(ctx, user, true); err != nil {
				s.logger.Errorf("failed to deprovision user %s: %v", userID, err)
			}
			continue
		}

		for _, userRole := range memberships {
			if userRole.User == nil {
				userRole.User = user
			}
			if err := s.service.UpdateGroupMembership(ctx, userRole, OperationRemove); err != nil {
				s.logger.Errorf("failed to remove expired membership %s of user %s: %v", userRole.ID, userID, err)
			}
		}
	}

	return nil
}

func allExpired(user *types.User, before time.Time) bool {
	for _, userRole := range user.UserRoles {
		if !userRole.Expired(before) {
			return false
		}
	}
	return true
}

func NewSweeper(store storage.StorageInterface, service ServiceInterface, logger logging.LoggerInterface) *Sweeper {
	s := new(Sweeper)

	s.store = store
	s.service = service
	s.logger = logger

	return s
}
