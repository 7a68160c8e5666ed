// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package manage

import "context"

// Record is one raw provisioning configuration record as returned by the
// directory. Records are untyped at this boundary; the provisioning package
// converts them into validated configs before use.
type Record map[string]any

type ManageInterface interface {
	// ProvisioningRecords returns the provisioning configurations connected
	// to any of the given application identifiers.
	ProvisioningRecords(ctx context.Context, applicationIDs []string) ([]Record, error)
}
