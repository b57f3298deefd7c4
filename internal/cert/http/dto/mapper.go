// Package dto provides data transfer objects for the certification HTTP layer.
package dto

import (
	"time"

	"github.com/studybuddy/certtracker/internal/cert/domain"
	"github.com/studybuddy/certtracker/internal/cert/usecase"
)

const dateLayout = "2006-01-02"

// parseDate converts an ISO date string to a *time.Time. Validation has
// already run, so a parse failure only happens on an empty string.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseDatePtr converts an optional ISO date string to a *time.Time.
func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return parseDate(*s)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// ToCreateCertificationInput converts a CreateCertificationRequest to a use case input
func ToCreateCertificationInput(req CreateCertificationRequest) usecase.CreateCertificationInput {
	return usecase.CreateCertificationInput{
		DomainID:            req.DomainID,
		CertName:            req.CertName,
		Provider:            req.Provider,
		CertDescription:     req.CertDescription,
		RenewalPeriodMonths: req.RenewalPeriodMonths,
	}
}

// ToCertificationUpdate converts an UpdateCertificationRequest to a domain update
func ToCertificationUpdate(req UpdateCertificationRequest) domain.CertificationUpdate {
	return domain.CertificationUpdate{
		DomainID:            req.DomainID,
		CertName:            req.CertName,
		Provider:            req.Provider,
		CertDescription:     req.CertDescription,
		RenewalPeriodMonths: req.RenewalPeriodMonths,
	}
}

// ToCreateUserCertInput converts a CreateUserCertRequest to a use case input
func ToCreateUserCertInput(req CreateUserCertRequest) usecase.CreateUserCertInput {
	return usecase.CreateUserCertInput{
		CertificationID:  req.CertificationID,
		Status:           req.Status,
		EarnedOn:         parseDate(req.EarnedOn),
		ExpiresOn:        parseDate(req.ExpiresOn),
		CEHoursRequired:  req.CEHoursRequired,
		CEHoursCompleted: req.CEHoursCompleted,
	}
}

// ToUserCertUpdate converts an UpdateUserCertRequest to a domain update
func ToUserCertUpdate(req UpdateUserCertRequest) domain.UserCertUpdate {
	return domain.UserCertUpdate{
		Status:           req.Status,
		EarnedOn:         parseDatePtr(req.EarnedOn),
		ExpiresOn:        parseDatePtr(req.ExpiresOn),
		CEHoursRequired:  req.CEHoursRequired,
		CEHoursCompleted: req.CEHoursCompleted,
	}
}

// ToCertificationResponse converts a domain Certification to its response DTO
func ToCertificationResponse(cert *domain.Certification) CertificationResponse {
	return CertificationResponse{
		CertificationID:     cert.ID,
		DomainID:            cert.DomainID,
		CertName:            cert.CertName,
		Provider:            cert.Provider,
		CertDescription:     cert.CertDescription,
		RenewalPeriodMonths: cert.RenewalPeriodMonths,
		CreatedAt:           cert.CreatedAt,
		UpdatedAt:           cert.UpdatedAt,
	}
}

// ToCertificationListResponse converts a catalog listing to response DTOs
func ToCertificationListResponse(certs []*domain.Certification) []CertificationResponse {
	responses := make([]CertificationResponse, 0, len(certs))
	for _, cert := range certs {
		responses = append(responses, ToCertificationResponse(cert))
	}
	return responses
}

// ToUserCertResponse converts a domain UserCert to its response DTO
func ToUserCertResponse(userCert *domain.UserCert) UserCertResponse {
	return UserCertResponse{
		UserCertID:       userCert.ID,
		CertificationID:  userCert.CertificationID,
		Status:           userCert.Status,
		EarnedOn:         formatDate(userCert.EarnedOn),
		ExpiresOn:        formatDate(userCert.ExpiresOn),
		CEHoursRequired:  userCert.CEHoursRequired,
		CEHoursCompleted: userCert.CEHoursCompleted,
	}
}

// ToListUserCertsResponse converts joined details to the list response DTO
func ToListUserCertsResponse(details []*domain.UserCertDetail) ListUserCertsResponse {
	responses := make([]UserCertDetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, UserCertDetailResponse{
			UserCertResponse: ToUserCertResponse(&d.UserCert),
			CertName:         d.CertName,
			Provider:         d.Provider,
		})
	}
	return ListUserCertsResponse{UserCerts: responses}
}
