// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running server started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
