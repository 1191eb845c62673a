package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
	"github.com/LHProvin/exercita365b/internal/ports/repositories"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

const locationColumns = "id, user_id, name, description, address, coordinates, created_at, updated_at"

// LocationRepository implements repositories.LocationRepository on Postgres.
// Ownership is enforced in every predicate: a row owned by another user is
// indistinguishable from a missing one.
type LocationRepository struct {
	pool PgxPoolInterface
}

// NewLocationRepository creates a new location repository.
func NewLocationRepository(pool PgxPoolInterface) repositories.LocationRepository {
	return &LocationRepository{pool: pool}
}

func scanLocation(row pgx.Row) (*entities.Location, error) {
	var location entities.Location
	var coordinates sql.NullString
	err := row.Scan(
		&location.ID,
		&location.UserID,
		&location.Name,
		&location.Description,
		&location.Address,
		&coordinates,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	location.Coordinates = coordinates.String
	return &location, nil
}

// coordinatesParam maps an empty coordinates string to SQL NULL.
func coordinatesParam(coordinates string) sql.NullString {
	return sql.NullString{String: coordinates, Valid: coordinates != ""}
}

// Create inserts a new location.
func (r *LocationRepository) Create(ctx context.Context, location *entities.Location) (*entities.Location, error) {
	log := logger.Log(ctx).With(zap.String("repository", "location"), zap.String("method", "Create"))
	log.Debug(ctx, "creating location", zap.String("userID", location.UserID))

	query := `
        INSERT INTO locations (user_id, name, description, address, coordinates)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + locationColumns

	created, err := scanLocation(r.pool.QueryRow(ctx, query,
		location.UserID,
		location.Name,
		location.Description,
		location.Address,
		coordinatesParam(location.Coordinates),
	))
	if err != nil {
		log.Error(ctx, "error creating location", zap.Error(err))
		return nil, fmt.Errorf("error creating location: %w", err)
	}

	log.Debug(ctx, "location created", zap.String("locationID", created.ID))
	return created, nil
}

// FindOwned finds a location by id scoped to its owner.
func (r *LocationRepository) FindOwned(ctx context.Context, locationID, userID string) (*entities.Location, error) {
	log := logger.Log(ctx).With(zap.String("repository", "location"), zap.String("method", "FindOwned"))

	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1 AND user_id = $2`

	location, err := scanLocation(r.pool.QueryRow(ctx, query, locationID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "location not found or not owned", zap.String("locationID", locationID))
			return nil, entities.ErrLocationNotFound
		}
		log.Error(ctx, "error finding location", zap.Error(err))
		return nil, fmt.Errorf("error querying location: %w", err)
	}

	return location, nil
}

// ListByUserID returns every location owned by the user.
func (r *LocationRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Location, error) {
	log := logger.Log(ctx).With(zap.String("repository", "location"), zap.String("method", "ListByUserID"))
	log.Debug(ctx, "listing locations", zap.String("userID", userID))

	query := `SELECT ` + locationColumns + ` FROM locations WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing locations", zap.Error(err))
		return nil, fmt.Errorf("error listing locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*entities.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			log.Error(ctx, "error scanning location", zap.Error(err))
			return nil, fmt.Errorf("error scanning location: %w", err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return locations, nil
}

// Update persists the mutable fields of an owned location and returns the
// merged record.
func (r *LocationRepository) Update(ctx context.Context, location *entities.Location) (*entities.Location, error) {
	log := logger.Log(ctx).With(zap.String("repository", "location"), zap.String("method", "Update"))
	log.Debug(ctx, "updating location", zap.String("locationID", location.ID))

	query := `
        UPDATE locations
        SET name = $3, description = $4, address = $5, coordinates = $6, updated_at = now()
        WHERE id = $1 AND user_id = $2
        RETURNING ` + locationColumns

	updated, err := scanLocation(r.pool.QueryRow(ctx, query,
		location.ID,
		location.UserID,
		location.Name,
		location.Description,
		location.Address,
		coordinatesParam(location.Coordinates),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "location not found or not owned for update")
			return nil, entities.ErrLocationNotFound
		}
		log.Error(ctx, "error updating location", zap.Error(err))
		return nil, fmt.Errorf("error updating location: %w", err)
	}

	return updated, nil
}

// Delete removes an owned location.
func (r *LocationRepository) Delete(ctx context.Context, locationID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "location"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting location", zap.String("locationID", locationID))

	query := `DELETE FROM locations WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, locationID, userID)
	if err != nil {
		log.Error(ctx, "error deleting location", zap.Error(err))
		return fmt.Errorf("error deleting location: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "location not found or not owned for deletion")
		return entities.ErrLocationNotFound
	}

	return nil
}

// CountByUserID counts the locations owned by the user.
func (r *LocationRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "location"), zap.String("method", "CountByUserID"))

	query := `SELECT COUNT(*) FROM locations WHERE user_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		log.Error(ctx, "error counting locations", zap.Error(err))
		return 0, fmt.Errorf("error counting locations: %w", err)
	}

	return count, nil
}
