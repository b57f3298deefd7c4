// Package usecase implements the business logic for the certification catalog
// and per-account tracked certifications.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/studybuddy/certtracker/internal/cert/domain"
	"github.com/studybuddy/certtracker/internal/database"
	appValidation "github.com/studybuddy/certtracker/internal/validation"
)

// CreateCertificationInput contains the input data for a new catalog entry
type CreateCertificationInput struct {
	DomainID            int64
	CertName            string
	Provider            string
	CertDescription     *string
	RenewalPeriodMonths *int
}

// CertificationUseCase defines the interface for catalog business logic
type CertificationUseCase interface {
	Create(ctx context.Context, input CreateCertificationInput) (*domain.Certification, error)
	Get(ctx context.Context, id int64) (*domain.Certification, error)
	List(ctx context.Context) ([]*domain.Certification, error)
	Update(ctx context.Context, id int64, update domain.CertificationUpdate) (*domain.Certification, error)
	Delete(ctx context.Context, id int64) error
}

// CertificationRepository interface defines catalog repository operations
type CertificationRepository interface {
	Create(ctx context.Context, cert *domain.Certification) error
	GetByID(ctx context.Context, id int64) (*domain.Certification, error)
	List(ctx context.Context) ([]*domain.Certification, error)
	Update(ctx context.Context, id int64, update domain.CertificationUpdate) error
	Delete(ctx context.Context, id int64) error
}

type certificationUseCase struct {
	txManager database.TxManager
	certRepo  CertificationRepository
}

// NewCertificationUseCase creates a new CertificationUseCase
func NewCertificationUseCase(txManager database.TxManager, certRepo CertificationRepository) CertificationUseCase {
	return &certificationUseCase{
		txManager: txManager,
		certRepo:  certRepo,
	}
}

func (uc *certificationUseCase) validateCreateInput(input CreateCertificationInput) error {
	err := validation.Errors{
		"domain_id": validation.Validate(input.DomainID,
			validation.Required.Error("domain_id is required"),
			validation.Min(int64(1)).Error("domain_id must be positive"),
		),
		"cert_name": validation.Validate(input.CertName,
			validation.Required.Error("cert_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("cert_name must be between 1 and 255 characters"),
		),
		"provider": validation.Validate(input.Provider,
			validation.Required.Error("provider is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("provider must be between 1 and 255 characters"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Create adds a new entry to the shared catalog
func (uc *certificationUseCase) Create(ctx context.Context, input CreateCertificationInput) (*domain.Certification, error) {
	if err := uc.validateCreateInput(input); err != nil {
		return nil, err
	}

	cert := &domain.Certification{
		DomainID:            input.DomainID,
		CertName:            strings.TrimSpace(input.CertName),
		Provider:            strings.TrimSpace(input.Provider),
		CertDescription:     input.CertDescription,
		RenewalPeriodMonths: input.RenewalPeriodMonths,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.certRepo.Create(ctx, cert)
	})
	if err != nil {
		return nil, err
	}

	return cert, nil
}

// Get retrieves a single catalog entry
func (uc *certificationUseCase) Get(ctx context.Context, id int64) (*domain.Certification, error) {
	return uc.certRepo.GetByID(ctx, id)
}

// List retrieves the whole catalog
func (uc *certificationUseCase) List(ctx context.Context) ([]*domain.Certification, error) {
	return uc.certRepo.List(ctx)
}

// Update applies a partial catalog update and returns the fresh row
func (uc *certificationUseCase) Update(ctx context.Context, id int64, update domain.CertificationUpdate) (*domain.Certification, error) {
	if update.IsEmpty() {
		return nil, appValidation.WrapValidationError(
			validation.NewError("validation_empty_update", "No fields provided to update"),
		)
	}

	var updated *domain.Certification
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.certRepo.Update(ctx, id, update); err != nil {
			return err
		}
		cert, err := uc.certRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated = cert
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a catalog entry
func (uc *certificationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.certRepo.Delete(ctx, id)
}
