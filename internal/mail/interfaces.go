// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// Message is a plain-text mail to be delivered.
type Message struct {
	To      string
	Subject string
	Body    string
}

type SenderInterface interface {
	// Submit queues the message on the worker pool and returns a Delivery
	// whose outcome can be awaited. Submit blocks when the queue is full.
	Submit(ctx context.Context, msg *Message) (*Delivery, error)
	Close()
}
