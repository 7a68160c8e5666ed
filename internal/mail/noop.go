// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type NoopSender struct {
}

func (s *NoopSender) Submit(ctx context.Context, msg *Message) (*Delivery, error) {
	d := &Delivery{done: make(chan error, 1)}
	d.done <- nil
	return d, nil
}

func (s *NoopSender) Close() {
}

func NewNoopSender() *NoopSender {
	return new(NoopSender)
}
