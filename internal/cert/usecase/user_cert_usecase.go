package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/studybuddy/certtracker/internal/cert/domain"
	"github.com/studybuddy/certtracker/internal/database"
	appValidation "github.com/studybuddy/certtracker/internal/validation"
)

// CreateUserCertInput contains the input data for tracking a certification.
// The owner id always comes from the authenticated identity, never from the
// request payload.
type CreateUserCertInput struct {
	CertificationID  int64
	Status           string
	EarnedOn         *time.Time
	ExpiresOn        *time.Time
	CEHoursRequired  *int
	CEHoursCompleted *int
}

// DeleteUserCertsOutput reports how many rows a delete removed
type DeleteUserCertsOutput struct {
	RowsDeleted int64
}

// UserCertUseCase defines the interface for tracked-certification business
// logic. Every operation is scoped to the owner passed in as userID.
type UserCertUseCase interface {
	Create(ctx context.Context, userID int64, input CreateUserCertInput) (*domain.UserCert, error)
	List(ctx context.Context, userID int64, userCertID *int64) ([]*domain.UserCertDetail, error)
	Update(ctx context.Context, userID, userCertID int64, update domain.UserCertUpdate) error
	Delete(ctx context.Context, userID int64, userCertID *int64) (*DeleteUserCertsOutput, error)
}

// UserCertRepository interface defines tracked-certification repository operations
type UserCertRepository interface {
	Create(ctx context.Context, userCert *domain.UserCert) error
	ListByUser(ctx context.Context, userID int64, userCertID *int64) ([]*domain.UserCertDetail, error)
	Update(ctx context.Context, userID, userCertID int64, update domain.UserCertUpdate) error
	Delete(ctx context.Context, userID int64, userCertID *int64) (int64, error)
}

type userCertUseCase struct {
	txManager    database.TxManager
	userCertRepo UserCertRepository
}

// NewUserCertUseCase creates a new UserCertUseCase
func NewUserCertUseCase(txManager database.TxManager, userCertRepo UserCertRepository) UserCertUseCase {
	return &userCertUseCase{
		txManager:    txManager,
		userCertRepo: userCertRepo,
	}
}

func (uc *userCertUseCase) validateCreateInput(input CreateUserCertInput) error {
	err := validation.Errors{
		"certification_id": validation.Validate(input.CertificationID,
			validation.Required.Error("certification_id is required"),
			validation.Min(int64(1)).Error("certification_id must be positive"),
		),
		"status": validation.Validate(input.Status,
			validation.Required.Error("status is required"),
			appValidation.NotBlank,
			validation.Length(1, 64).Error("status must be between 1 and 64 characters"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Create tracks a certification for the owner
func (uc *userCertUseCase) Create(ctx context.Context, userID int64, input CreateUserCertInput) (*domain.UserCert, error) {
	if err := uc.validateCreateInput(input); err != nil {
		return nil, err
	}

	userCert := &domain.UserCert{
		UserID:           userID,
		CertificationID:  input.CertificationID,
		Status:           input.Status,
		EarnedOn:         input.EarnedOn,
		ExpiresOn:        input.ExpiresOn,
		CEHoursRequired:  input.CEHoursRequired,
		CEHoursCompleted: input.CEHoursCompleted,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userCertRepo.Create(ctx, userCert)
	})
	if err != nil {
		return nil, err
	}

	return userCert, nil
}

// List retrieves the owner's tracked certifications with catalog details.
// A non-nil userCertID narrows the result to a single owned record.
func (uc *userCertUseCase) List(ctx context.Context, userID int64, userCertID *int64) ([]*domain.UserCertDetail, error) {
	if userCertID != nil && *userCertID <= 0 {
		return nil, appValidation.WrapValidationError(
			validation.NewError("validation_user_cert_id", "user_cert_id must be a positive integer"),
		)
	}
	return uc.userCertRepo.ListByUser(ctx, userID, userCertID)
}

// Update applies a partial update to one of the owner's tracked certifications
func (uc *userCertUseCase) Update(ctx context.Context, userID, userCertID int64, update domain.UserCertUpdate) error {
	if userCertID <= 0 {
		return appValidation.WrapValidationError(
			validation.NewError("validation_user_cert_id", "user_cert_id is required"),
		)
	}
	if update.IsEmpty() {
		return appValidation.WrapValidationError(
			validation.NewError("validation_empty_update", "No fields provided to update"),
		)
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userCertRepo.Update(ctx, userID, userCertID, update)
	})
}

// Delete removes one of the owner's tracked certifications, or all of them
// when userCertID is nil.
func (uc *userCertUseCase) Delete(ctx context.Context, userID int64, userCertID *int64) (*DeleteUserCertsOutput, error) {
	if userCertID != nil && *userCertID <= 0 {
		return nil, appValidation.WrapValidationError(
			validation.NewError("validation_user_cert_id", "user_cert_id must be positive"),
		)
	}

	var rows int64
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		deleted, err := uc.userCertRepo.Delete(ctx, userID, userCertID)
		if err != nil {
			return err
		}
		rows = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteUserCertsOutput{RowsDeleted: rows}, nil
}
