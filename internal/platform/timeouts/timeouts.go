// Package timeouts defines shared timeout constants for the HTTP service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time spent writing one response.
const Write = 10 * time.Second

// Idle bounds how long a keep-alive connection may sit unused.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
