package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/studybuddy/certtracker/internal/cert/domain"
	"github.com/studybuddy/certtracker/internal/database"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// PostgreSQLUserCertRepository handles tracked-certification persistence for
// PostgreSQL. Every statement carries a user_id predicate; ownership is
// enforced inside the SQL, never by a separate pre-check.
type PostgreSQLUserCertRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserCertRepository creates a new PostgreSQLUserCertRepository
func NewPostgreSQLUserCertRepository(db *sql.DB) *PostgreSQLUserCertRepository {
	return &PostgreSQLUserCertRepository{
		db: db,
	}
}

// Create inserts a tracked certification for the owner and fills in the
// generated id. A dangling certification_id surfaces as a catalog not-found.
func (r *PostgreSQLUserCertRepository) Create(ctx context.Context, userCert *domain.UserCert) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO user_cert (user_id, certification_id, status, earned_on, expires_on, ce_hours_required, ce_hours_completed, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			  RETURNING user_cert_id`

	err := querier.QueryRowContext(ctx, query,
		userCert.UserID, userCert.CertificationID, userCert.Status,
		userCert.EarnedOn, userCert.ExpiresOn, userCert.CEHoursRequired, userCert.CEHoursCompleted,
	).Scan(&userCert.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCertificationNotFound
		}
		return apperrors.Wrap(err, "failed to create user cert")
	}
	return nil
}

// ListByUser retrieves the owner's tracked certifications joined with their
// catalog entries, newest first. A non-nil userCertID narrows the result to a
// single owned record.
func (r *PostgreSQLUserCertRepository) ListByUser(ctx context.Context, userID int64, userCertID *int64) ([]*domain.UserCertDetail, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT uc.user_cert_id, uc.user_id, uc.certification_id, uc.status,
					 uc.earned_on, uc.expires_on, uc.ce_hours_required, uc.ce_hours_completed,
					 uc.created_at, uc.updated_at, c.cert_name, c.provider
			  FROM user_cert uc
			  JOIN certification c ON c.certification_id = uc.certification_id
			  WHERE uc.user_id = $1`

	args := []any{userID}
	if userCertID != nil {
		query += " AND uc.user_cert_id = $2"
		args = append(args, *userCertID)
	}
	query += " ORDER BY uc.user_cert_id DESC"

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list user certs")
	}
	defer rows.Close()

	var details []*domain.UserCertDetail
	for rows.Next() {
		var d domain.UserCertDetail
		err := rows.Scan(
			&d.ID, &d.UserID, &d.CertificationID, &d.Status,
			&d.EarnedOn, &d.ExpiresOn, &d.CEHoursRequired, &d.CEHoursCompleted,
			&d.CreatedAt, &d.UpdatedAt, &d.CertName, &d.Provider,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user cert")
		}
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate user certs")
	}

	return details, nil
}

// Update applies a partial update to one of the owner's tracked
// certifications. A row owned by someone else matches nothing and is reported
// as not found.
func (r *PostgreSQLUserCertRepository) Update(ctx context.Context, userID, userCertID int64, update domain.UserCertUpdate) error {
	querier := database.GetTx(ctx, r.db)

	assignments, args := buildUserCertAssignments(update, placeholderDollar)
	if len(assignments) == 0 {
		return apperrors.NewClassified(apperrors.ErrInvalidInput, "No fields provided to update")
	}

	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, userCertID)
	idPos := len(args)
	args = append(args, userID)
	ownerPos := len(args)

	query := "UPDATE user_cert SET " + strings.Join(assignments, ", ") +
		" WHERE user_cert_id = " + placeholderDollar(idPos) +
		" AND user_id = " + placeholderDollar(ownerPos)

	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user cert")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return domain.ErrUserCertNotFound
	}

	return nil
}

// Delete removes one tracked certification when userCertID is set, or all of
// the owner's tracked certifications when it is nil. It returns the number of
// rows removed; zero matches are reported as ErrNoRecordsToDelete.
func (r *PostgreSQLUserCertRepository) Delete(ctx context.Context, userID int64, userCertID *int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var result sql.Result
	var err error
	if userCertID != nil {
		result, err = querier.ExecContext(ctx,
			`DELETE FROM user_cert WHERE user_cert_id = $1 AND user_id = $2`, *userCertID, userID)
	} else {
		result, err = querier.ExecContext(ctx,
			`DELETE FROM user_cert WHERE user_id = $1`, userID)
	}
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete user certs")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return 0, domain.ErrNoRecordsToDelete
	}

	return rows, nil
}

// isForeignKeyViolation checks if the error is a foreign key constraint violation
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "violates foreign key constraint"; MySQL: "a foreign key constraint fails"
	return strings.Contains(errMsg, "foreign key constraint")
}
