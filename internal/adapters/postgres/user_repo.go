// Package postgres provides PostgreSQL implementations of the repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
	"github.com/LHProvin/exercita365b/internal/domain/services"
	"github.com/LHProvin/exercita365b/internal/ports/repositories"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

// Postgres error codes mapped to domain errors. The unique violation is the
// storage-layer safety net for registration races; the foreign-key violation
// catches a location created between the ownership check and the delete.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// PgxPoolInterface abstracts the pgx pool for testing.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

const userColumns = "id, name, gender, national_id, address, email, password_hash, birthdate, created_at, updated_at"

// UserRepository implements repositories.UserRepository on Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Gender,
		&user.NationalID,
		&user.Address,
		&user.Email,
		&user.PasswordHash,
		&user.Birthdate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. A unique-index violation surfaces as
// services.ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (name, gender, national_id, address, email, password_hash, birthdate)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Name,
		user.Gender,
		user.NationalID,
		user.Address,
		user.Email,
		user.PasswordHash,
		user.Birthdate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate national_id or email on insert")
			return nil, services.ErrUserAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// FindByID finds a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return user, nil
}

// FindByNationalIDOrEmail performs the combined duplicate lookup used before
// registration.
func (r *UserRepository) FindByNationalIDOrEmail(ctx context.Context, nationalID, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByNationalIDOrEmail"))

	query := `SELECT ` + userColumns + ` FROM users WHERE national_id = $1 OR email = $2 LIMIT 1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, nationalID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by national id or email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by national id or email: %w", err)
	}

	return user, nil
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	query := `DELETE FROM users WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			log.Debug(ctx, "user still referenced by locations", zap.String("id", id))
			return entities.ErrUserHasLocations
		}
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deletion", zap.String("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}
