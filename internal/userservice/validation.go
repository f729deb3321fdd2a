package userservice

import (
	"github.com/sushihentaime/bloglist/internal/common"
)

// validateNewUser mirrors the registration rules: both credentials present,
// each at least three characters. Message strings are part of the wire
// contract and must not be reworded.
func validateNewUser(v *common.Validator, username, password string) {
	v.Check(username != "" && password != "", "credentials", "username and password are required")

	if username != "" {
		v.Check(len(username) >= 3, "username", "username must be at least 3 characters long")
	}

	if password != "" {
		v.Check(len(password) >= 3, "password", "password must be at least 3 characters long")
	}
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
