package server

import "context"

// Server defines the lifecycle contract of the process.
//
// RunServer blocks until ctx is cancelled or the listener fails, then
// shuts everything down gracefully.
type Server interface {
	RunServer(ctx context.Context) error
}

// BackgroundRunner is implemented by [workers.Workers].
type BackgroundRunner interface {
	Run(ctx context.Context)
}
