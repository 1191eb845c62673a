package api

import "context"

// UserUseCase is the primary port for user management operations.
type UserUseCase interface {
	// Delete removes a user permanently. Deletion is blocked while the
	// user still owns locations.
	Delete(ctx context.Context, userID string) error
}
