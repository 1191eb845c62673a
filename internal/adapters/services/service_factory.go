// Package services provides the token and password service adapters.
package services

import (
	"time"

	svc "github.com/LHProvin/exercita365b/internal/ports/services"
)

// ServiceFactory creates the supporting services for authentication.
type ServiceFactory struct {
	passwordService svc.PasswordService
	tokenService    svc.TokenService
}

// NewServiceFactory creates a new service factory.
func NewServiceFactory(jwtSecretKey string, accessTokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecretKey, accessTokenTTL),
	}
}

// PasswordService returns the password service.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}

// TokenService returns the token service.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return f.tokenService
}
