package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/gourbalissakh/scolaris/core"
)

var (
	validRoleTag  = "valid_role"
	validRoleText = "must be one of admin, teacher or student"
)

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(validRoleTag, roleValidation)
	core.RegisterCustomTranslation(validRoleTag, validRoleText)

	core.Validate.RegisterStructValidation(newUserStructValidation, NewUser{})
}

// Custom Validators

// roleValidation checks that the provided role is a known one.
func roleValidation(fl validator.FieldLevel) bool {
	return IsValidRole(fl.Field().String())
}

// newUserStructValidation does NewUser's struct level validation
func newUserStructValidation(sl validator.StructLevel) {
	if nu, ok := sl.Current().Interface().(NewUser); ok {
		if !IsValidRole(nu.Role) {
			sl.ReportError(nu.Role, "role", "Role", validRoleTag, "")
		}
		// students register with a matricule; staff do not need one
		if nu.Role == RoleStudent && nu.Matricule == "" {
			sl.ReportError(nu.Matricule, "matricule", "Matricule", "required", "")
		}
	}
}
