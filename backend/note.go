package backend

import (
	"context"
	"fmt"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/academic"
)

type NoteService struct {
	c *Client
}

func NewNoteService(c *Client) *NoteService {
	return &NoteService{c: c}
}

func (svc *NoteService) GetAll(ctx context.Context) ([]academic.Note, error) {
	out := make([]academic.Note, 0)
	err := svc.c.Get(ctx, "/notes", UnwrapDataData, &out)
	return out, err
}

// ByStudent lists every evaluation result of one student.
func (svc *NoteService) ByStudent(ctx context.Context, studentID int) ([]academic.Note, error) {
	out := make([]academic.Note, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/notes?student_id=%d", studentID), UnwrapDataData, &out)
	return out, err
}

// ByCours lists every evaluation result recorded for one course.
func (svc *NoteService) ByCours(ctx context.Context, coursID int) ([]academic.Note, error) {
	out := make([]academic.Note, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/notes?cours_id=%d", coursID), UnwrapDataData, &out)
	return out, err
}

func (svc *NoteService) Get(ctx context.Context, id int) (academic.Note, error) {
	var out academic.Note
	err := svc.c.Get(ctx, fmt.Sprintf("/notes/%d", id), UnwrapData, &out)
	return out, err
}

func (svc *NoteService) Create(ctx context.Context, in academic.NewNote) (academic.Note, error) {
	in.TypeEvaluation = core.CleanString(in.TypeEvaluation)
	if err := checkInput(in); err != nil {
		return academic.Note{}, err
	}
	var out academic.Note
	err := svc.c.Post(ctx, "/notes", in, UnwrapData, &out)
	return out, err
}

func (svc *NoteService) Update(ctx context.Context, id int, in academic.NewNote) (academic.Note, error) {
	in.TypeEvaluation = core.CleanString(in.TypeEvaluation)
	if err := checkInput(in); err != nil {
		return academic.Note{}, err
	}
	var out academic.Note
	err := svc.c.Put(ctx, fmt.Sprintf("/notes/%d", id), in, UnwrapData, &out)
	return out, err
}

func (svc *NoteService) Delete(ctx context.Context, id int) error {
	return svc.c.Delete(ctx, fmt.Sprintf("/notes/%d", id))
}
