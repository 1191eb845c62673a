package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
	"github.com/LHProvin/exercita365b/internal/domain/services"
	"github.com/LHProvin/exercita365b/internal/ports/api"
	"github.com/LHProvin/exercita365b/internal/ports/repositories"
	svc "github.com/LHProvin/exercita365b/internal/ports/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

const (
	methodCreateLocation = "Create"
	methodListLocations  = "List"
	methodGetLocation    = "Get"
	methodUpdateLocation = "Update"
	methodDeleteLocation = "Delete"
	methodMapLink        = "MapLink"

	msgCreatingLocation   = "creating location"
	msgLocationCreated    = "location created"
	msgListingLocations   = "listing locations"
	msgFetchingLocation   = "fetching location"
	msgUpdatingLocation   = "updating location"
	msgLocationUpdated    = "location updated"
	msgDeletingLocation   = "deleting location"
	msgLocationDeleted    = "location deleted"
	msgBuildingMapLink    = "building map link"
	msgLocationNotOwned   = "location not found for owner"
	msgGeocodeNoMatch     = "address has no geocoding match"
	msgCoordinatesStored  = "geocoded coordinates stored on location"

	msgErrCreateLocation  = "failed to create location"
	msgErrListLocations   = "failed to list locations"
	msgErrGetLocation     = "failed to get location"
	msgErrUpdateLocation  = "failed to update location"
	msgErrDeleteLocation  = "failed to delete location"
	msgErrGeocodeAddress  = "failed to geocode address"
	msgErrStoreCoords     = "failed to persist geocoded coordinates"

	errCtxValidatingLocation = "validating location input"
	errCtxCreatingLocation   = "creating location"
	errCtxListingLocations   = "listing locations"
	errCtxFetchingLocation   = "fetching location"
	errCtxUpdatingLocation   = "updating location"
	errCtxDeletingLocation   = "deleting location"
	errCtxGeocodingAddress   = "geocoding address"
)

// Field names reported in location validation failures.
const (
	fieldLocationName        = "name"
	fieldLocationDescription = "description"
	fieldLocationAddress     = "address"
)

// LocationUseCaseImpl implements the LocationUseCase interface.
type LocationUseCaseImpl struct {
	locationRepo repositories.LocationRepository
	geocoder     svc.Geocoder
}

// NewLocationUseCase creates a new location use case.
func NewLocationUseCase(
	locationRepo repositories.LocationRepository,
	geocoder svc.Geocoder,
) api.LocationUseCase {
	return &LocationUseCaseImpl{
		locationRepo: locationRepo,
		geocoder:     geocoder,
	}
}

// Create persists a new location owned by ownerID. The owner is fixed here
// and never reassigned.
func (l *LocationUseCaseImpl) Create(ctx context.Context, ownerID, name, description, address string) (*entities.Location, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateLocation), zap.String("ownerID", ownerID))
	log.Debug(ctx, msgCreatingLocation)

	name = sanitizeText(name)
	description = sanitizeText(description)
	address = sanitizeText(address)

	var c fieldCollector
	if name == "" {
		c.fail(fieldLocationName)
	}
	if description == "" {
		c.fail(fieldLocationDescription)
	}
	if address == "" {
		c.fail(fieldLocationAddress)
	}
	if err := c.err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingLocation, err)
	}

	location := entities.NewLocation(ownerID, name, description, address)

	created, err := l.locationRepo.Create(ctx, location)
	if err != nil {
		log.Error(ctx, msgErrCreateLocation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingLocation, err)
	}

	log.Info(ctx, msgLocationCreated, zap.String("locationID", created.ID))
	return created, nil
}

// List returns every location owned by ownerID in store iteration order.
func (l *LocationUseCaseImpl) List(ctx context.Context, ownerID string) ([]*entities.Location, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListLocations), zap.String("ownerID", ownerID))
	log.Debug(ctx, msgListingLocations)

	locations, err := l.locationRepo.ListByUserID(ctx, ownerID)
	if err != nil {
		log.Error(ctx, msgErrListLocations, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingLocations, err)
	}

	return locations, nil
}

// Get returns a location owned by ownerID. A location owned by another user
// is indistinguishable from a missing one.
func (l *LocationUseCaseImpl) Get(ctx context.Context, ownerID, locationID string) (*entities.Location, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetLocation),
		zap.String("ownerID", ownerID),
		zap.String("locationID", locationID),
	)
	log.Debug(ctx, msgFetchingLocation)

	location, err := l.locationRepo.FindOwned(ctx, locationID, ownerID)
	if err != nil {
		if errors.Is(err, entities.ErrLocationNotFound) {
			log.Debug(ctx, msgLocationNotOwned)
			return nil, fmt.Errorf("%s: %w", errCtxFetchingLocation, entities.ErrLocationNotFound)
		}
		log.Error(ctx, msgErrGetLocation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingLocation, err)
	}

	return location, nil
}

// Update applies the allow-listed fields present in the input and returns
// the merged record. Fields absent from the input are left unchanged.
// Changing the address clears stored coordinates since they describe the
// previous address.
func (l *LocationUseCaseImpl) Update(ctx context.Context, ownerID, locationID string, input api.UpdateLocationInput) (*entities.Location, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodUpdateLocation),
		zap.String("ownerID", ownerID),
		zap.String("locationID", locationID),
	)
	log.Debug(ctx, msgUpdatingLocation)

	location, err := l.Get(ctx, ownerID, locationID)
	if err != nil {
		return nil, err
	}

	if err := applyLocationUpdate(location, input); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingLocation, err)
	}
	location.UpdatedAt = time.Now()

	updated, err := l.locationRepo.Update(ctx, location)
	if err != nil {
		if errors.Is(err, entities.ErrLocationNotFound) {
			log.Debug(ctx, msgLocationNotOwned)
			return nil, fmt.Errorf("%s: %w", errCtxUpdatingLocation, entities.ErrLocationNotFound)
		}
		log.Error(ctx, msgErrUpdateLocation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingLocation, err)
	}

	log.Info(ctx, msgLocationUpdated, zap.String("locationID", updated.ID))
	return updated, nil
}

// Delete removes an owned location permanently.
func (l *LocationUseCaseImpl) Delete(ctx context.Context, ownerID, locationID string) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteLocation),
		zap.String("ownerID", ownerID),
		zap.String("locationID", locationID),
	)
	log.Debug(ctx, msgDeletingLocation)

	if err := l.locationRepo.Delete(ctx, locationID, ownerID); err != nil {
		if errors.Is(err, entities.ErrLocationNotFound) {
			log.Debug(ctx, msgLocationNotOwned)
			return fmt.Errorf("%s: %w", errCtxDeletingLocation, entities.ErrLocationNotFound)
		}
		log.Error(ctx, msgErrDeleteLocation, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingLocation, err)
	}

	log.Info(ctx, msgLocationDeleted, zap.String("locationID", locationID))
	return nil
}

// MapLink geocodes the stored address of an owned location and composes a
// map-service URL. Successful coordinates are stored back on the record.
func (l *LocationUseCaseImpl) MapLink(ctx context.Context, ownerID, locationID string) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodMapLink),
		zap.String("ownerID", ownerID),
		zap.String("locationID", locationID),
	)
	log.Debug(ctx, msgBuildingMapLink)

	location, err := l.Get(ctx, ownerID, locationID)
	if err != nil {
		return "", err
	}

	coords, err := l.geocoder.Geocode(ctx, location.Address)
	if err != nil {
		if errors.Is(err, services.ErrGeocodeNotFound) {
			log.Debug(ctx, msgGeocodeNoMatch, zap.String("address", location.Address))
			return "", fmt.Errorf("%s: %w", errCtxGeocodingAddress, services.ErrGeocodeNotFound)
		}
		log.Error(ctx, msgErrGeocodeAddress, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxGeocodingAddress, err)
	}

	location.Coordinates = coords.String()
	location.UpdatedAt = time.Now()
	if _, err := l.locationRepo.Update(ctx, location); err != nil {
		// The link is still valid; losing the cached coordinates only costs
		// a future lookup.
		log.Warn(ctx, msgErrStoreCoords, zap.Error(err))
	} else {
		log.Debug(ctx, msgCoordinatesStored, zap.String("coordinates", location.Coordinates))
	}

	return services.MapLink(coords), nil
}

// applyLocationUpdate merges the allow-listed fields onto the location.
// Present fields must be non-empty after control characters are stripped.
func applyLocationUpdate(location *entities.Location, input api.UpdateLocationInput) error {
	var c fieldCollector

	if input.Name != nil {
		name := sanitizeText(*input.Name)
		if name == "" {
			c.fail(fieldLocationName)
		} else {
			location.Name = name
		}
	}
	if input.Description != nil {
		description := sanitizeText(*input.Description)
		if description == "" {
			c.fail(fieldLocationDescription)
		} else {
			location.Description = description
		}
	}
	if input.Address != nil {
		address := sanitizeText(*input.Address)
		if address == "" {
			c.fail(fieldLocationAddress)
		} else if address != location.Address {
			location.Address = address
			location.Coordinates = ""
		}
	}

	return c.err()
}
