package domain

import "context"

// RelayClient posts finished text to the configured downstream endpoint.
type RelayClient interface {
	Post(ctx context.Context, text string) (Delivery, error)
}
