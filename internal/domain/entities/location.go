package entities

import (
	"errors"
	"time"
)

// ErrLocationNotFound is returned when a location does not exist or is
// owned by another user. The two cases are deliberately indistinguishable.
var ErrLocationNotFound = errors.New("location not found")

// Location represents an exercise location owned by a user. The owner is
// fixed at creation and never reassigned. Coordinates stays empty until the
// address has been geocoded.
type Location struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Address     string
	Coordinates string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLocation creates a location owned by the given user.
func NewLocation(userID, name, description, address string) *Location {
	now := time.Now()
	return &Location{
		UserID:      userID,
		Name:        name,
		Description: description,
		Address:     address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
