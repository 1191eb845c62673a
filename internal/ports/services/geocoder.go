package services

import (
	"context"

	domain "github.com/LHProvin/exercita365b/internal/domain/services"
)

// Geocoder translates a free-text address into coordinates via an external
// lookup. Implementations return domain.ErrGeocodeNotFound when the lookup
// has no match and domain.ErrGeocodeUnavailable on transport failure.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
