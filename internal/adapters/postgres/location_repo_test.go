package postgres_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LHProvin/exercita365b/internal/adapters/postgres"
	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

var locationColumns = []string{"id", "user_id", "name", "description", "address", "coordinates", "created_at", "updated_at"}

func testLocation() entities.Location {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.Location{
		ID:          "test-location-id",
		UserID:      "test-user-id",
		Name:        "Park",
		Description: "Running track",
		Address:     "Central Park, NY",
		Coordinates: "40.78,-73.96",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func locationRows(location entities.Location) *pgxmock.Rows {
	coords := sql.NullString{String: location.Coordinates, Valid: location.Coordinates != ""}
	return pgxmock.NewRows(locationColumns).
		AddRow(location.ID, location.UserID, location.Name, location.Description,
			location.Address, coords, location.CreatedAt, location.UpdatedAt)
}

func TestLocationRepository_Create(t *testing.T) {
	ctx := testContext(t)
	location := testLocation()
	location.Coordinates = ""

	t.Run("insert stores NULL coordinates for a fresh location", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO locations").
			WithArgs(location.UserID, location.Name, location.Description, location.Address,
				sql.NullString{}).
			WillReturnRows(locationRows(location))

		repo := postgres.NewLocationRepository(mock)

		created, err := repo.Create(ctx, &location)
		require.NoError(t, err)
		assert.Equal(t, location.ID, created.ID)
		assert.Empty(t, created.Coordinates)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_FindOwned(t *testing.T) {
	ctx := testContext(t)
	location := testLocation()

	t.Run("owned location returned with coordinates", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM locations WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(location.ID, location.UserID).
			WillReturnRows(locationRows(location))

		repo := postgres.NewLocationRepository(mock)

		found, err := repo.FindOwned(ctx, location.ID, location.UserID)
		require.NoError(t, err)
		assert.Equal(t, location.Coordinates, found.Coordinates)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign owner behaves like a missing row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM locations WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(location.ID, "other-user").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewLocationRepository(mock)

		found, err := repo.FindOwned(ctx, location.ID, "other-user")
		require.Nil(t, found)
		require.ErrorIs(t, err, entities.ErrLocationNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_ListByUserID(t *testing.T) {
	ctx := testContext(t)
	location := testLocation()

	t.Run("all owned rows returned", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		second := location
		second.ID = "test-location-id-2"
		second.Coordinates = ""

		rows := pgxmock.NewRows(locationColumns).
			AddRow(location.ID, location.UserID, location.Name, location.Description,
				location.Address, sql.NullString{String: location.Coordinates, Valid: true},
				location.CreatedAt, location.UpdatedAt).
			AddRow(second.ID, second.UserID, second.Name, second.Description,
				second.Address, sql.NullString{}, second.CreatedAt, second.UpdatedAt)

		mock.ExpectQuery("SELECT (.+) FROM locations WHERE user_id = \\$1").
			WithArgs(location.UserID).
			WillReturnRows(rows)

		repo := postgres.NewLocationRepository(mock)

		locations, err := repo.ListByUserID(ctx, location.UserID)
		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, location.Coordinates, locations[0].Coordinates)
		assert.Empty(t, locations[1].Coordinates)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows yields an empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM locations WHERE user_id = \\$1").
			WithArgs("lonely-user").
			WillReturnRows(pgxmock.NewRows(locationColumns))

		repo := postgres.NewLocationRepository(mock)

		locations, err := repo.ListByUserID(ctx, "lonely-user")
		require.NoError(t, err)
		assert.Empty(t, locations)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_Update(t *testing.T) {
	ctx := testContext(t)
	location := testLocation()

	t.Run("owned row updated", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE locations").
			WithArgs(location.ID, location.UserID, location.Name, location.Description,
				location.Address, sql.NullString{String: location.Coordinates, Valid: true}).
			WillReturnRows(locationRows(location))

		repo := postgres.NewLocationRepository(mock)

		updated, err := repo.Update(ctx, &location)
		require.NoError(t, err)
		assert.Equal(t, location.Name, updated.Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign row reported as missing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE locations").
			WithArgs(location.ID, location.UserID, location.Name, location.Description,
				location.Address, sql.NullString{String: location.Coordinates, Valid: true}).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewLocationRepository(mock)

		updated, err := repo.Update(ctx, &location)
		require.Nil(t, updated)
		require.ErrorIs(t, err, entities.ErrLocationNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("owned row deleted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM locations").
			WithArgs("test-location-id", "test-user-id").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewLocationRepository(mock)

		require.NoError(t, repo.Delete(ctx, "test-location-id", "test-user-id"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign row reported as missing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM locations").
			WithArgs("test-location-id", "other-user").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewLocationRepository(mock)

		err = repo.Delete(ctx, "test-location-id", "other-user")
		require.ErrorIs(t, err, entities.ErrLocationNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_CountByUserID(t *testing.T) {
	ctx := testContext(t)

	t.Run("count returned", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM locations WHERE user_id = \\$1").
			WithArgs("test-user-id").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		repo := postgres.NewLocationRepository(mock)

		count, err := repo.CountByUserID(ctx, "test-user-id")
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
