// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	authdomain "github.com/studybuddy/certtracker/internal/auth/domain"
	"github.com/studybuddy/certtracker/internal/auth/service"
	"github.com/studybuddy/certtracker/internal/database"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
	"github.com/studybuddy/certtracker/internal/metrics"
	"github.com/studybuddy/certtracker/internal/user/domain"
	appValidation "github.com/studybuddy/certtracker/internal/validation"
)

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Industry  string `json:"industry"`
	UserRole  string `json:"user_role"`
}

// LoginInput contains the credentials for a login attempt
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is the outcome of a successful registration or login
type AuthResult struct {
	User  *domain.User
	Token string
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	Register(ctx context.Context, input RegisterUserInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	GetInfo(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	authMetrics    metrics.AuthMetrics
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordHasher service.PasswordHasher,
	tokenService service.TokenService,
	authMetrics metrics.AuthMetrics,
) UseCase {
	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		authMetrics:    authMetrics,
	}
}

// validateRegisterUserInput validates the registration input using jellydator/validation
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FirstName,
			validation.Required.Error("first_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("last_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 64).Error("username must be between 3 and 64 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
		validation.Field(&input.Industry,
			validation.Length(0, 255).Error("industry must be at most 255 characters"),
		),
		validation.Field(&input.UserRole,
			validation.Length(0, 255).Error("user_role must be at most 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new account and issues a token for it
func (uc *UserUseCase) Register(ctx context.Context, input RegisterUserInput) (*AuthResult, error) {
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Username:       strings.TrimSpace(input.Username),
		HashedPassword: hashedPassword,
		Industry:       strings.TrimSpace(input.Industry),
		UserRole:       strings.TrimSpace(input.UserRole),
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		uc.authMetrics.RecordCredentialAttempt(ctx, "register", "rejected")
		return nil, err
	}

	token, err := uc.tokenService.Issue(user.ID, user.Username, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	uc.authMetrics.RecordCredentialAttempt(ctx, "register", "success")
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token. An unknown username and a
// wrong password are reported differently, matching the API contract.
func (uc *UserUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, appValidation.WrapValidationError(
			apperrors.New("username and password are required"),
		)
	}

	user, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		uc.authMetrics.RecordCredentialAttempt(ctx, "login", "rejected")
		return nil, err
	}

	if !uc.passwordHasher.Verify(input.Password, user.HashedPassword) {
		uc.authMetrics.RecordCredentialAttempt(ctx, "login", "rejected")
		return nil, authdomain.ErrInvalidCredentials
	}

	token, err := uc.tokenService.Issue(user.ID, user.Username, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	uc.authMetrics.RecordCredentialAttempt(ctx, "login", "success")
	return &AuthResult{User: user, Token: token}, nil
}

// GetInfo retrieves the account behind an authenticated identity
func (uc *UserUseCase) GetInfo(ctx context.Context, userID int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile update and returns the fresh row
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error) {
	if update.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var updated *domain.User
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.UpdateProfile(ctx, userID, update); err != nil {
			return err
		}
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
