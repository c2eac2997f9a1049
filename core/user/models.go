package user

import (
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var AllRoles = []string{RoleAdmin, RoleTeacher, RoleStudent}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account known to the backend: an administrator, a teacher or a
// student. Matricule, phone, address, status and the class reference are only
// present for some roles; the backend owns which.
type User struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Surname   string      `json:"surname"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	Matricule null.String `json:"matricule,omitempty"`
	Telephone null.String `json:"telephone,omitempty"`
	Adresse   null.String `json:"adresse,omitempty"`
	Statut    null.String `json:"statut,omitempty"`
	ClasseID  null.Int    `json:"classe_id,omitempty"`
}

func (usr User) IsAdmin() bool   { return usr.Role == RoleAdmin }
func (usr User) IsTeacher() bool { return usr.Role == RoleTeacher }
func (usr User) IsStudent() bool { return usr.Role == RoleStudent }

// FullName joins the name parts the way lists display them.
func (usr User) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", usr.Name, usr.Surname))
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NewUser is the registration / admin-create payload.
type NewUser struct {
	Name      string `json:"name" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required"`
	Matricule string `json:"matricule,omitempty" validate:"omitempty,matricule"`
	Telephone string `json:"telephone,omitempty" validate:"omitempty,phone_sn"`
	Adresse   string `json:"adresse,omitempty"`
	ClasseID  int    `json:"classe_id,omitempty"`
}

// UpdateUser is the partial-edit payload; zero values are omitted on the wire.
type UpdateUser struct {
	Name      string `json:"name,omitempty"`
	Surname   string `json:"surname,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Role      string `json:"role,omitempty"`
	Matricule string `json:"matricule,omitempty" validate:"omitempty,matricule"`
	Telephone string `json:"telephone,omitempty" validate:"omitempty,phone_sn"`
	Adresse   string `json:"adresse,omitempty"`
	Statut    string `json:"statut,omitempty"`
	ClasseID  int    `json:"classe_id,omitempty"`
}
