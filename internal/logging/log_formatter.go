// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type LogFormatter struct {
	logger LoggerInterface
}

type logEntry struct {
	logger  LoggerInterface
	request *http.Request
}

// NewLogFormatter adapts our logger to chi's request logger middleware.
func NewLogFormatter(logger LoggerInterface) *LogFormatter {
	f := new(LogFormatter)
	f.logger = logger
	return f
}

func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &logEntry{logger: f.logger, request: r}
}

func (e *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.logger.Debugf(
		"%s %s - %d %dB in %s",
		e.request.Method,
		e.request.URL.Path,
		status,
		bytes,
		elapsed,
	)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Errorf("panic while serving %s %s: %v\n%s", e.request.Method, e.request.URL.Path, v, stack)
}
