package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/studybuddy/certtracker/internal/cert/domain"
	"github.com/studybuddy/certtracker/internal/database"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// MySQLCertificationRepository handles catalog persistence for MySQL
type MySQLCertificationRepository struct {
	db *sql.DB
}

// NewMySQLCertificationRepository creates a new MySQLCertificationRepository
func NewMySQLCertificationRepository(db *sql.DB) *MySQLCertificationRepository {
	return &MySQLCertificationRepository{
		db: db,
	}
}

// Create inserts a new catalog entry and fills in the generated id.
func (r *MySQLCertificationRepository) Create(ctx context.Context, cert *domain.Certification) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO certification (domain_id, cert_name, provider, cert_description, renewal_period_months, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		cert.DomainID, cert.CertName, cert.Provider, cert.CertDescription, cert.RenewalPeriodMonths,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create certification")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	cert.ID = id
	return nil
}

// GetByID retrieves a catalog entry by id
func (r *MySQLCertificationRepository) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	var cert domain.Certification
	querier := database.GetTx(ctx, r.db)

	query := `SELECT certification_id, domain_id, cert_name, provider, cert_description, renewal_period_months, created_at, updated_at
			  FROM certification WHERE certification_id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&cert.ID, &cert.DomainID, &cert.CertName, &cert.Provider,
		&cert.CertDescription, &cert.RenewalPeriodMonths, &cert.CreatedAt, &cert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCertificationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get certification")
	}

	return &cert, nil
}

// List retrieves the whole catalog ordered by name
func (r *MySQLCertificationRepository) List(ctx context.Context) ([]*domain.Certification, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT certification_id, domain_id, cert_name, provider, cert_description, renewal_period_months, created_at, updated_at
			  FROM certification ORDER BY cert_name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list certifications")
	}
	defer rows.Close()

	var certs []*domain.Certification
	for rows.Next() {
		var cert domain.Certification
		err := rows.Scan(
			&cert.ID, &cert.DomainID, &cert.CertName, &cert.Provider,
			&cert.CertDescription, &cert.RenewalPeriodMonths, &cert.CreatedAt, &cert.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan certification")
		}
		certs = append(certs, &cert)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate certifications")
	}

	return certs, nil
}

// Update applies a partial catalog update. Returns ErrCertificationNotFound
// when no row matched the id.
func (r *MySQLCertificationRepository) Update(ctx context.Context, id int64, update domain.CertificationUpdate) error {
	querier := database.GetTx(ctx, r.db)

	assignments, args := buildCertificationAssignments(update, placeholderQuestion)
	if len(assignments) == 0 {
		return apperrors.NewClassified(apperrors.ErrInvalidInput, "No fields provided to update")
	}

	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, id)

	query := "UPDATE certification SET " + strings.Join(assignments, ", ") + " WHERE certification_id = ?"

	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to update certification")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return domain.ErrCertificationNotFound
	}

	return nil
}

// Delete removes a catalog entry. Returns ErrCertificationNotFound when no
// row matched the id.
func (r *MySQLCertificationRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM certification WHERE certification_id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete certification")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return domain.ErrCertificationNotFound
	}

	return nil
}
