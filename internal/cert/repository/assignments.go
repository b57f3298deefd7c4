package repository

import (
	"strconv"

	"github.com/studybuddy/certtracker/internal/cert/domain"
)

// placeholderFunc renders a positional bind parameter for a dialect.
type placeholderFunc func(position int) string

func placeholderDollar(position int) string {
	return "$" + strconv.Itoa(position)
}

func placeholderQuestion(int) string {
	return "?"
}

type assignmentBuilder struct {
	placeholder placeholderFunc
	assignments []string
	args        []any
}

func (b *assignmentBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, column+" = "+b.placeholder(len(b.args)))
}

// buildCertificationAssignments turns the set fields of a CertificationUpdate
// into SQL assignments plus their bind arguments, in a stable column order.
func buildCertificationAssignments(update domain.CertificationUpdate, placeholder placeholderFunc) ([]string, []any) {
	b := assignmentBuilder{placeholder: placeholder}

	if update.DomainID != nil {
		b.add("domain_id", *update.DomainID)
	}
	if update.CertName != nil {
		b.add("cert_name", *update.CertName)
	}
	if update.Provider != nil {
		b.add("provider", *update.Provider)
	}
	if update.CertDescription != nil {
		b.add("cert_description", *update.CertDescription)
	}
	if update.RenewalPeriodMonths != nil {
		b.add("renewal_period_months", *update.RenewalPeriodMonths)
	}

	return b.assignments, b.args
}

// buildUserCertAssignments does the same for a UserCertUpdate.
func buildUserCertAssignments(update domain.UserCertUpdate, placeholder placeholderFunc) ([]string, []any) {
	b := assignmentBuilder{placeholder: placeholder}

	if update.Status != nil {
		b.add("status", *update.Status)
	}
	if update.EarnedOn != nil {
		b.add("earned_on", *update.EarnedOn)
	}
	if update.ExpiresOn != nil {
		b.add("expires_on", *update.ExpiresOn)
	}
	if update.CEHoursRequired != nil {
		b.add("ce_hours_required", *update.CEHoursRequired)
	}
	if update.CEHoursCompleted != nil {
		b.add("ce_hours_completed", *update.CEHoursCompleted)
	}

	return b.assignments, b.args
}
