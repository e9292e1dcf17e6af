// Package workers provides abstractions for managing and running
// background workers in the terminal client.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens on a
// goroutine owned by the worker until ctx is cancelled or Stop is called.
// Stop blocks until that goroutine has exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() { <-ctx.Done() }()
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Refresher is anything that can re-read its state from the server.
type Refresher interface {
	Refresh(ctx context.Context) error
}
