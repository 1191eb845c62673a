// Package services defines interfaces for supporting services.
package services

import (
	"context"
	"time"
)

// TokenService defines signed-token operations. Tokens are pure
// cryptographic credentials; there is no revocation list.
type TokenService interface {
	// Issue produces a signed token bound to userID. A zero ttl issues a
	// token that never expires on its own; the returned time is zero in
	// that case.
	Issue(ctx context.Context, userID string, ttl time.Duration) (string, time.Time, error)

	// Verify checks the signature and expiry and returns the bound user id.
	Verify(ctx context.Context, token string) (string, error)
}
