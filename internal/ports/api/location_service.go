package api

import (
	"context"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

// UpdateLocationInput is the allow-list of mutable location fields. A nil
// pointer leaves the field unchanged.
type UpdateLocationInput struct {
	Name        *string
	Description *string
	Address     *string
}

// LocationUseCase is the primary port for the location lifecycle. Every
// operation derives ownership from the verified caller identity, never from
// the request payload.
type LocationUseCase interface {
	Create(ctx context.Context, ownerID, name, description, address string) (*entities.Location, error)

	List(ctx context.Context, ownerID string) ([]*entities.Location, error)

	Get(ctx context.Context, ownerID, locationID string) (*entities.Location, error)

	Update(ctx context.Context, ownerID, locationID string, input UpdateLocationInput) (*entities.Location, error)

	Delete(ctx context.Context, ownerID, locationID string) error

	// MapLink geocodes the stored address of an owned location and returns
	// a map-service URL for the match.
	MapLink(ctx context.Context, ownerID, locationID string) (string, error)
}
