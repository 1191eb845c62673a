// Package api defines the primary ports exposed by the application layer.
package api

import (
	"context"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

// RegisterInput carries the registration fields. Birthdate is the raw
// string and is validated by the use case.
type RegisterInput struct {
	Name       string
	Gender     string
	NationalID string
	Address    string
	Email      string
	Password   string
	Birthdate  string
}

// AuthUseCase is the primary port for authentication operations.
type AuthUseCase interface {
	// Register validates the input, enforces uniqueness of national id and
	// email, persists the user and returns it together with a non-expiring
	// token bound to the new identifier.
	Register(ctx context.Context, input RegisterInput) (*entities.User, string, error)

	// Login authenticates by email and password and returns the user with
	// a short-lived token.
	Login(ctx context.Context, email, password string) (*entities.User, string, error)
}
