package backend

import (
	"context"
	"fmt"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/academic"
)

type ClasseService struct {
	c *Client
}

func NewClasseService(c *Client) *ClasseService {
	return &ClasseService{c: c}
}

func (svc *ClasseService) GetAll(ctx context.Context) ([]academic.Classe, error) {
	out := make([]academic.Classe, 0)
	err := svc.c.Get(ctx, "/classes", UnwrapDataData, &out)
	return out, err
}

// ByNiveau lists the class sections of one level.
func (svc *ClasseService) ByNiveau(ctx context.Context, niveauID int) ([]academic.Classe, error) {
	out := make([]academic.Classe, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/classes?niveau_id=%d", niveauID), UnwrapDataData, &out)
	return out, err
}

func (svc *ClasseService) Get(ctx context.Context, id int) (academic.Classe, error) {
	var out academic.Classe
	err := svc.c.Get(ctx, fmt.Sprintf("/classes/%d", id), UnwrapData, &out)
	return out, err
}

func (svc *ClasseService) Create(ctx context.Context, in academic.NewClasse) (academic.Classe, error) {
	in.Nom = core.CleanString(in.Nom)
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return academic.Classe{}, err
	}
	var out academic.Classe
	err := svc.c.Post(ctx, "/classes", in, UnwrapData, &out)
	return out, err
}

func (svc *ClasseService) Update(ctx context.Context, id int, in academic.NewClasse) (academic.Classe, error) {
	in.Nom = core.CleanString(in.Nom)
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return academic.Classe{}, err
	}
	var out academic.Classe
	err := svc.c.Put(ctx, fmt.Sprintf("/classes/%d", id), in, UnwrapData, &out)
	return out, err
}

func (svc *ClasseService) Delete(ctx context.Context, id int) error {
	return svc.c.Delete(ctx, fmt.Sprintf("/classes/%d", id))
}
