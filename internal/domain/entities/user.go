// Package entities defines the core domain entities.
package entities

import (
	"errors"
	"time"
)

// User domain errors.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserHasLocations = errors.New("user still owns locations")
)

// Gender is the enumerated user gender.
type Gender string

// Allowed gender values.
const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// IsValid reports whether the gender is one of the enumerated values.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// User represents a registered user. PasswordHash is the only stored form
// of the password.
type User struct {
	ID           string
	Name         string
	Gender       Gender
	NationalID   string
	Address      string
	Email        string
	PasswordHash string
	Birthdate    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
