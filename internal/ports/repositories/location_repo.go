package repositories

import (
	"context"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

// LocationRepository defines persistence operations for locations. Every
// read and write is scoped by the owning user id; a row owned by another
// user behaves exactly like a missing row.
type LocationRepository interface {
	Create(ctx context.Context, location *entities.Location) (*entities.Location, error)

	FindOwned(ctx context.Context, locationID, userID string) (*entities.Location, error)

	ListByUserID(ctx context.Context, userID string) ([]*entities.Location, error)

	Update(ctx context.Context, location *entities.Location) (*entities.Location, error)

	Delete(ctx context.Context, locationID, userID string) error

	CountByUserID(ctx context.Context, userID string) (int, error)
}
