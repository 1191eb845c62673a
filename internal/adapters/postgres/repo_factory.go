package postgres

import (
	"github.com/LHProvin/exercita365b/internal/ports/repositories"
)

// RepositoryFactory creates the Postgres-backed repositories.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository returns the user repository.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// LocationRepository returns the location repository.
func (f *RepositoryFactory) LocationRepository() repositories.LocationRepository {
	return NewLocationRepository(f.pool)
}
