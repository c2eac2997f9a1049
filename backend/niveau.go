package backend

import (
	"context"
	"fmt"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/academic"
)

type NiveauService struct {
	c *Client
}

func NewNiveauService(c *Client) *NiveauService {
	return &NiveauService{c: c}
}

func (svc *NiveauService) GetAll(ctx context.Context) ([]academic.Niveau, error) {
	out := make([]academic.Niveau, 0)
	err := svc.c.Get(ctx, "/niveaux", UnwrapDataData, &out)
	return out, err
}

// ByFiliere lists the levels of one program.
func (svc *NiveauService) ByFiliere(ctx context.Context, filiereID int) ([]academic.Niveau, error) {
	out := make([]academic.Niveau, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/niveaux?filiere_id=%d", filiereID), UnwrapDataData, &out)
	return out, err
}

func (svc *NiveauService) Get(ctx context.Context, id int) (academic.Niveau, error) {
	var out academic.Niveau
	err := svc.c.Get(ctx, fmt.Sprintf("/niveaux/%d", id), UnwrapData, &out)
	return out, err
}

func (svc *NiveauService) Create(ctx context.Context, in academic.NewNiveau) (academic.Niveau, error) {
	in.Nom = core.CleanString(in.Nom)
	if err := checkInput(in); err != nil {
		return academic.Niveau{}, err
	}
	var out academic.Niveau
	err := svc.c.Post(ctx, "/niveaux", in, UnwrapData, &out)
	return out, err
}

func (svc *NiveauService) Update(ctx context.Context, id int, in academic.NewNiveau) (academic.Niveau, error) {
	in.Nom = core.CleanString(in.Nom)
	if err := checkInput(in); err != nil {
		return academic.Niveau{}, err
	}
	var out academic.Niveau
	err := svc.c.Put(ctx, fmt.Sprintf("/niveaux/%d", id), in, UnwrapData, &out)
	return out, err
}

func (svc *NiveauService) Delete(ctx context.Context, id int) error {
	return svc.c.Delete(ctx, fmt.Sprintf("/niveaux/%d", id))
}
