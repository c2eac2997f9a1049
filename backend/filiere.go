package backend

import (
	"context"
	"fmt"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/academic"
)

type FiliereService struct {
	c *Client
}

func NewFiliereService(c *Client) *FiliereService {
	return &FiliereService{c: c}
}

func (svc *FiliereService) GetAll(ctx context.Context) ([]academic.Filiere, error) {
	out := make([]academic.Filiere, 0)
	err := svc.c.Get(ctx, "/filieres", UnwrapDataData, &out)
	return out, err
}

func (svc *FiliereService) Get(ctx context.Context, id int) (academic.Filiere, error) {
	var out academic.Filiere
	err := svc.c.Get(ctx, fmt.Sprintf("/filieres/%d", id), UnwrapData, &out)
	return out, err
}

func (svc *FiliereService) Create(ctx context.Context, in academic.NewFiliere) (academic.Filiere, error) {
	in.Nom = core.CleanString(in.Nom)
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return academic.Filiere{}, err
	}
	var out academic.Filiere
	err := svc.c.Post(ctx, "/filieres", in, UnwrapData, &out)
	return out, err
}

func (svc *FiliereService) Update(ctx context.Context, id int, in academic.NewFiliere) (academic.Filiere, error) {
	in.Nom = core.CleanString(in.Nom)
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return academic.Filiere{}, err
	}
	var out academic.Filiere
	err := svc.c.Put(ctx, fmt.Sprintf("/filieres/%d", id), in, UnwrapData, &out)
	return out, err
}

func (svc *FiliereService) Delete(ctx context.Context, id int) error {
	return svc.c.Delete(ctx, fmt.Sprintf("/filieres/%d", id))
}
