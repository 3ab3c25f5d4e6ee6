// Package workers runs the background maintenance jobs of the server.
// It defines the Worker interface and a Workers aggregate that starts every
// registered worker and waits for all of them to stop.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Implementations must not return early
// on transient errors.
type Worker interface {
	Run(ctx context.Context)
}
