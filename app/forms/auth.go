package forms

import "github.com/shashiranjanraj/backoffice/pkg/validate"

// Login is the payload of POST /api/login.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// Validate runs the struct rules and returns the field error map.
func (f Login) Validate() map[string]string {
	return validate.Struct(f)
}
