// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
