// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to
// return quickly and do their work in goroutines they spawn internally.
// Stop asks the worker to finish; it must be safe to call more than once.
type Worker interface {
	Run()
	Stop()
}
