package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LHProvin/exercita365b/internal/adapters/postgres"
	"github.com/LHProvin/exercita365b/internal/domain/entities"
	domain "github.com/LHProvin/exercita365b/internal/domain/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection error")

var userColumns = []string{"id", "name", "gender", "national_id", "address", "email", "password_hash", "birthdate", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func testUser() entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.User{
		ID:           "test-user-id",
		Name:         "Maria Oliveira",
		Gender:       entities.GenderFemale,
		NationalID:   "98765432150",
		Address:      "Rua das Flores 100",
		Email:        "maria@example.com",
		PasswordHash: "hashed_password",
		Birthdate:    time.Date(1985, 7, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userRows(user entities.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(user.ID, user.Name, user.Gender, user.NationalID, user.Address,
			user.Email, user.PasswordHash, user.Birthdate, user.CreatedAt, user.UpdatedAt)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("successful insert returns the stored row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Gender, user.NationalID, user.Address,
				user.Email, user.PasswordHash, user.Birthdate).
			WillReturnRows(userRows(user))

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &user)
		require.NoError(t, err)
		assert.Equal(t, user.ID, created.ID)
		assert.Equal(t, user.Email, created.Email)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to already-exists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Gender, user.NationalID, user.Address,
				user.Email, user.PasswordHash, user.Birthdate).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &user)
		require.Nil(t, created)
		require.ErrorIs(t, err, domain.ErrUserAlreadyExists)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Gender, user.NationalID, user.Address,
				user.Email, user.PasswordHash, user.Birthdate).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &user)
		require.Nil(t, created)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("user found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs(user.Email).
			WillReturnRows(userRows(user))

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("unknown@example.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByEmail(ctx, "unknown@example.com")
		require.Nil(t, found)
		require.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByNationalIDOrEmail(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("match on either column", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE national_id = \\$1 OR email = \\$2").
			WithArgs(user.NationalID, user.Email).
			WillReturnRows(userRows(user))

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByNationalIDOrEmail(ctx, user.NationalID, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no duplicate", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE national_id = \\$1 OR email = \\$2").
			WithArgs(user.NationalID, user.Email).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByNationalIDOrEmail(ctx, user.NationalID, user.Email)
		require.Nil(t, found)
		require.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("existing user deleted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM users").
			WithArgs("test-user-id").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewUserRepository(mock)

		require.NoError(t, repo.Delete(ctx, "test-user-id"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation maps to has-locations", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM users").
			WithArgs("test-user-id").
			WillReturnError(&pgconn.PgError{Code: "23503"})

		repo := postgres.NewUserRepository(mock)

		err = repo.Delete(ctx, "test-user-id")
		require.ErrorIs(t, err, entities.ErrUserHasLocations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user reported as not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM users").
			WithArgs("missing-id").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewUserRepository(mock)

		err = repo.Delete(ctx, "missing-id")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
