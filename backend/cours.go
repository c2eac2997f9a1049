package backend

import (
	"context"
	"fmt"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/academic"
)

type CoursService struct {
	c *Client
}

func NewCoursService(c *Client) *CoursService {
	return &CoursService{c: c}
}

func (svc *CoursService) GetAll(ctx context.Context) ([]academic.Cours, error) {
	out := make([]academic.Cours, 0)
	err := svc.c.Get(ctx, "/cours", UnwrapDataData, &out)
	return out, err
}

// ByClasse lists the courses taught to one class section.
func (svc *CoursService) ByClasse(ctx context.Context, classeID int) ([]academic.Cours, error) {
	out := make([]academic.Cours, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/cours?classe_id=%d", classeID), UnwrapDataData, &out)
	return out, err
}

// ByTeacher lists the courses assigned to one teacher.
func (svc *CoursService) ByTeacher(ctx context.Context, teacherID int) ([]academic.Cours, error) {
	out := make([]academic.Cours, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/cours?teacher_id=%d", teacherID), UnwrapDataData, &out)
	return out, err
}

func (svc *CoursService) Get(ctx context.Context, id int) (academic.Cours, error) {
	var out academic.Cours
	err := svc.c.Get(ctx, fmt.Sprintf("/cours/%d", id), UnwrapData, &out)
	return out, err
}

func (svc *CoursService) Create(ctx context.Context, in academic.NewCours) (academic.Cours, error) {
	in.Nom = core.CleanString(in.Nom)
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return academic.Cours{}, err
	}
	var out academic.Cours
	err := svc.c.Post(ctx, "/cours", in, UnwrapData, &out)
	return out, err
}

func (svc *CoursService) Update(ctx context.Context, id int, in academic.NewCours) (academic.Cours, error) {
	in.Nom = core.CleanString(in.Nom)
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return academic.Cours{}, err
	}
	var out academic.Cours
	err := svc.c.Put(ctx, fmt.Sprintf("/cours/%d", id), in, UnwrapData, &out)
	return out, err
}

func (svc *CoursService) Delete(ctx context.Context, id int) error {
	return svc.c.Delete(ctx, fmt.Sprintf("/cours/%d", id))
}
