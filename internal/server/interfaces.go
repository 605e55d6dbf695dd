package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or
// the listener fails. Shutdown stops accepting requests and waits for
// in-flight ones until ctx expires.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
