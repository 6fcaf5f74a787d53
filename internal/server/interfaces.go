package server

import "context"

// Server defines the lifecycle contract for the process-level server
// managed by this package.
//
// Implementations block in [Server.RunServer] until a stop signal arrives
// or a transport fails, then shut every transport down gracefully.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// transport is a single listener run by [Server].
type transport interface {
	name() string
	serve() error
	shutdown(ctx context.Context) error
}
