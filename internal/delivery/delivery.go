// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker...) started by
// the application bootstrap.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
