package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/certtracker/internal/user/domain"
)

func userColumns() []string {
	return []string{
		"user_id", "first_name", "last_name", "username", "hashed_password",
		"industry", "user_role", "bio", "created_at", "updated_at",
	}
}

func sampleUserRow(id int64, username string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns()).
		AddRow(id, "Ada", "Lovelace", username, "digest", "IT", "Engineer", nil, now, now)
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	t.Run("assigns generated id", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO app_user`).
			WithArgs("Ada", "Lovelace", "ada", "digest", "IT", "Engineer", nil).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(42)))

		repo := NewPostgreSQLUserRepository(db)
		user := &domain.User{
			FirstName:      "Ada",
			LastName:       "Lovelace",
			Username:       "ada",
			HashedPassword: "digest",
			Industry:       "IT",
			UserRole:       "Engineer",
		}

		err = repo.Create(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username maps to conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO app_user`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "app_user_username_key"`))

		repo := NewPostgreSQLUserRepository(db)
		err = repo.Create(context.Background(), &domain.User{Username: "ada"})
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_GetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM app_user WHERE username`).
			WithArgs("ada").
			WillReturnRows(sampleUserRow(7, "ada"))

		repo := NewPostgreSQLUserRepository(db)
		user, err := repo.GetByUsername(context.Background(), "ada")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "ada", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM app_user WHERE username`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		repo := NewPostgreSQLUserRepository(db)
		_, err = repo.GetByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM app_user WHERE user_id`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		repo := NewPostgreSQLUserRepository(db)
		_, err = repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_UpdateProfile(t *testing.T) {
	t.Run("partial update only touches set fields", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		bio := "CE hunter"
		mock.ExpectExec(`UPDATE app_user SET bio = \$1, updated_at = NOW\(\) WHERE user_id = \$2`).
			WithArgs(bio, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLUserRepository(db)
		err = repo.UpdateProfile(context.Background(), 7, domain.ProfileUpdate{Bio: &bio})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		role := "Manager"
		mock.ExpectExec(`UPDATE app_user SET`).
			WithArgs(role, int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLUserRepository(db)
		err = repo.UpdateProfile(context.Background(), 404, domain.ProfileUpdate{UserRole: &role})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLUserRepository(db)
		err = repo.UpdateProfile(context.Background(), 7, domain.ProfileUpdate{})
		assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
	})
}
