package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/certtracker/internal/cert/domain"
)

func certificationColumns() []string {
	return []string{
		"certification_id", "domain_id", "cert_name", "provider",
		"cert_description", "renewal_period_months", "created_at", "updated_at",
	}
}

func TestPostgreSQLCertificationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	months := 36
	mock.ExpectQuery(`INSERT INTO certification`).
		WithArgs(int64(1), "CISSP", "ISC2", nil, &months).
		WillReturnRows(sqlmock.NewRows([]string{"certification_id"}).AddRow(int64(3)))

	repo := NewPostgreSQLCertificationRepository(db)
	cert := &domain.Certification{
		DomainID:            1,
		CertName:            "CISSP",
		Provider:            "ISC2",
		RenewalPeriodMonths: &months,
	}
	err = repo.Create(context.Background(), cert)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cert.ID)
}

func TestPostgreSQLCertificationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(certificationColumns()).
		AddRow(int64(2), int64(1), "CCNA", "Cisco", nil, 36, now, now).
		AddRow(int64(3), int64(1), "CISSP", "ISC2", nil, 36, now, now)

	mock.ExpectQuery(`SELECT .+ FROM certification ORDER BY cert_name`).WillReturnRows(rows)

	repo := NewPostgreSQLCertificationRepository(db)
	certs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, "CCNA", certs[0].CertName)
}

func TestPostgreSQLCertificationRepository_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM certification WHERE certification_id`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		repo := NewPostgreSQLCertificationRepository(db)
		_, err = repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrCertificationNotFound)
	})
}

func TestPostgreSQLCertificationRepository_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		name := "CISSP 2026"
		mock.ExpectExec(`UPDATE certification SET cert_name = \$1, updated_at = NOW\(\) WHERE certification_id = \$2`).
			WithArgs(name, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLCertificationRepository(db)
		err = repo.Update(context.Background(), 3, domain.CertificationUpdate{CertName: &name})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		name := "CISSP 2026"
		mock.ExpectExec(`UPDATE certification SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLCertificationRepository(db)
		err = repo.Update(context.Background(), 404, domain.CertificationUpdate{CertName: &name})
		assert.ErrorIs(t, err, domain.ErrCertificationNotFound)
	})
}

func TestPostgreSQLCertificationRepository_Delete(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM certification WHERE certification_id`).
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLCertificationRepository(db)
		err = repo.Delete(context.Background(), 404)
		assert.ErrorIs(t, err, domain.ErrCertificationNotFound)
	})
}
