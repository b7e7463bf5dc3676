// Package delivery holds the inbound adapters started by the application.
package delivery

import "context"

// Delivery is a long-running inbound transport.
type Delivery interface {
	Serve(ctx context.Context) error
}
