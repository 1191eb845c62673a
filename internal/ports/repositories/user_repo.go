// Package repositories defines persistence interfaces.
package repositories

import (
	"context"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByNationalIDOrEmail is the single combined duplicate lookup used
	// before registration.
	FindByNationalIDOrEmail(ctx context.Context, nationalID, email string) (*entities.User, error)

	Delete(ctx context.Context, id string) error
}
