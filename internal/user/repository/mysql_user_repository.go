package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/studybuddy/certtracker/internal/database"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
	"github.com/studybuddy/certtracker/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user and fills in the generated id.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO app_user (first_name, last_name, username, hashed_password, industry, user_role, bio, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Username, user.HashedPassword,
		user.Industry, user.UserRole, user.Bio,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT user_id, first_name, last_name, username, hashed_password, industry, user_role, bio, created_at, updated_at
			  FROM app_user WHERE user_id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.HashedPassword,
		&user.Industry, &user.UserRole, &user.Bio, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT user_id, first_name, last_name, username, hashed_password, industry, user_role, bio, created_at, updated_at
			  FROM app_user WHERE username = ?`

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.HashedPassword,
		&user.Industry, &user.UserRole, &user.Bio, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	return &user, nil
}

// UpdateProfile applies a partial profile update. Returns ErrUserNotFound
// when no row matched the id.
func (r *MySQLUserRepository) UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) error {
	querier := database.GetTx(ctx, r.db)

	assignments, args := buildProfileAssignments(update, placeholderQuestion)
	if len(assignments) == 0 {
		return domain.ErrNoFieldsToUpdate
	}

	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, id)

	query := "UPDATE app_user SET " + strings.Join(assignments, ", ") + " WHERE user_id = ?"

	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user profile")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry error
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
