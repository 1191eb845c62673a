// Package dto defines the HTTP request and response shapes.
package dto

import (
	"time"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

// birthdateLayout is the wire format of calendar dates.
const birthdateLayout = "2006-01-02"

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	NationalID string `json:"nationalId"`
	Address    string `json:"address"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Birthdate  string `json:"birthdate"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public representation of a user. The password hash is
// never serialized.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	NationalID string    `json:"nationalId"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	Birthdate  string    `json:"birthdate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AuthResponse pairs a user with an issued token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// MessageResponse is a confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse maps a user entity to its response shape.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Gender:     string(user.Gender),
		NationalID: user.NationalID,
		Address:    user.Address,
		Email:      user.Email,
		Birthdate:  user.Birthdate.Format(birthdateLayout),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
