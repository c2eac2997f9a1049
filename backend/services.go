package backend

import (
	"github.com/pkg/errors"

	"github.com/gourbalissakh/scolaris/core"
)

// Services bundles one typed service per entity, all sharing the same Client.
type Services struct {
	Auth     *AuthService
	Filieres *FiliereService
	Niveaux  *NiveauService
	Classes  *ClasseService
	Cours    *CoursService
	Emplois  *EmploiTempsService
	Notes    *NoteService
	Users    *UserService
}

func NewServices(c *Client) *Services {
	return &Services{
		Auth:     NewAuthService(c),
		Filieres: NewFiliereService(c),
		Niveaux:  NewNiveauService(c),
		Classes:  NewClasseService(c),
		Cours:    NewCoursService(c),
		Emplois:  NewEmploiTempsService(c),
		Notes:    NewNoteService(c),
		Users:    NewUserService(c),
	}
}

// checkInput runs struct validation on a payload before it goes on the wire,
// so an obviously invalid submission never costs a round trip.
func checkInput(in interface{}) error {
	if err := core.Validate.Struct(in); err != nil {
		if flds := core.TranslateValidationErrors(err); flds != nil {
			return core.NewValidationError(errors.New("invalid input"), flds...)
		}
		return err
	}
	return nil
}
