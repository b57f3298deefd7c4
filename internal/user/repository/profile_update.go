package repository

import (
	"strconv"

	"github.com/studybuddy/certtracker/internal/user/domain"
)

// placeholderFunc renders a positional bind parameter for a dialect.
type placeholderFunc func(position int) string

func placeholderDollar(position int) string {
	return "$" + strconv.Itoa(position)
}

func placeholderQuestion(int) string {
	return "?"
}

// buildProfileAssignments turns the set fields of a ProfileUpdate into SQL
// assignments plus their bind arguments, in a stable column order.
func buildProfileAssignments(update domain.ProfileUpdate, placeholder placeholderFunc) ([]string, []any) {
	var assignments []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, column+" = "+placeholder(len(args)))
	}

	if update.FirstName != nil {
		add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		add("last_name", *update.LastName)
	}
	if update.Industry != nil {
		add("industry", *update.Industry)
	}
	if update.UserRole != nil {
		add("user_role", *update.UserRole)
	}
	if update.Bio != nil {
		add("bio", *update.Bio)
	}

	return assignments, args
}
