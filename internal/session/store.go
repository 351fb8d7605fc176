package session

import "context"

// Store persists the raw bearer token between runs. It performs no
// validation; expiry checks are the validator's job.
type Store interface {
	// Persist writes the token, overwriting any prior value.
	Persist(ctx context.Context, token string) error

	// Retrieve returns the stored token, or "" when none exists.
	Retrieve(ctx context.Context) (string, error)

	// Clear removes the token. Calling it when no token exists is a no-op.
	Clear(ctx context.Context) error
}
