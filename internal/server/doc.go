// Package server wires and runs the application's HTTP server together with
// the background workers.
//
// It owns the process lifecycle: startup, signal handling and graceful
// shutdown of the listener and every worker.
package server
