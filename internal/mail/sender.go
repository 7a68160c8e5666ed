// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gomail "github.com/wneessen/go-mail"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
	"github.com/canonical/provisioning-service/internal/tracing"
)

var _ SenderInterface = (*Sender)(nil)

var ErrSenderClosed = errors.New("mail sender is closed")

// Delivery tracks the outcome of one queued message.
type Delivery struct {
	done chan error
}

// Wait blocks until the message has been sent or failed, or the context is
// cancelled.
func (d *Delivery) Wait(ctx context.Context) error {
	select {
	case err := <-d.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type task struct {
	msg      *Message
	delivery *Delivery
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Workers  int
}

// Sender delivers messages over SMTP through a bounded pool of workers.
// Deliveries are asynchronous but observable, there is no detached
// fire-and-forget thread.
type Sender struct {
	client *gomail.Client
	from   string

	mu     sync.RWMutex
	tasks  chan task
	wg     sync.WaitGroup
	closed bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Sender) Submit(ctx context.Context, msg *Message) (*Delivery, error) {
	ctx, span := s.tracer.Start(ctx, "mail.Sender.Submit")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSenderClosed
	}

	d := &Delivery{done: make(chan error, 1)}

	select {
	case s.tasks <- task{msg: msg, delivery: d}:
		return d, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting new messages and waits for queued deliveries.
func (s *Sender) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.tasks)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sender) worker() {
	defer s.wg.Done()

	for t := range s.tasks {
		err := s.send(t.msg)
		if err != nil {
			s.logger.Errorf("failed to send mail to %s: %v", t.msg.To, err)
		}
		t.delivery.done <- err
	}
}

func (s *Sender) send(msg *Message) error {
	m := gomail.NewMsg()

	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %v", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid to address: %v", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	return s.client.DialAndSend(m)
}

func NewSender(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Sender, error) {
	s := new(Sender)

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %v", err)
	}

	s.client = client
	s.from = cfg.From

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	s.tasks = make(chan task, workers*4)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	s.wg.Add(workers)
	for range workers {
		go s.worker()
	}

	return s, nil
}
