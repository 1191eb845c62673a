package dto

import (
	"time"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

// CreateLocationRequest is the location creation payload. Ownership comes
// from the verified caller, never from the body.
type CreateLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// UpdateLocationRequest carries the mutable location fields. Absent fields
// stay unchanged.
type UpdateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

// LocationResponse is the public representation of a location.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Coordinates string    `json:"coordinates,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MapLinkResponse carries the composed map-service URL.
type MapLinkResponse struct {
	MapLink string `json:"mapLink"`
}

// NewLocationResponse maps a location entity to its response shape.
func NewLocationResponse(location *entities.Location) LocationResponse {
	return LocationResponse{
		ID:          location.ID,
		Name:        location.Name,
		Description: location.Description,
		Address:     location.Address,
		Coordinates: location.Coordinates,
		UserID:      location.UserID,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}

// NewLocationListResponse maps a slice of location entities.
func NewLocationListResponse(locations []*entities.Location) []LocationResponse {
	responses := make([]LocationResponse, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, NewLocationResponse(location))
	}
	return responses
}
