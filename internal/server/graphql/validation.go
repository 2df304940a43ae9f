package graphql

import (
	"net/mail"

	"github.com/dmitrijs2005/gophaccount/internal/common"
)

// UserInputData is the shared input of signUp and login.
type UserInputData struct {
	Email    string
	Password string
}

type fieldRule struct {
	name  string
	value func(UserInputData) string
	check func(string) bool
	msg   string
}

// userInputRules maps each UserInputData field to its validation rule.
var userInputRules = []fieldRule{
	{
		name:  "email",
		value: func(d UserInputData) string { return d.Email },
		check: isEmail,
		msg:   "email must be a valid email address",
	},
	{
		name:  "password",
		value: func(d UserInputData) string { return d.Password },
		check: func(s string) bool { return s != "" },
		msg:   "password must not be empty",
	},
}

// validateUserInput returns the first rule violation as a
// common.KindInvalidArgument error.
func validateUserInput(d UserInputData) error {
	for _, r := range userInputRules {
		if !r.check(r.value(d)) {
			return common.NewError(common.KindInvalidArgument, r.msg)
		}
	}
	return nil
}

// isEmail accepts a bare addr-spec such as "a@b.com"; display names and
// angle brackets are rejected.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}
