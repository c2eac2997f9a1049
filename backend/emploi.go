package backend

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/academic"
)

type EmploiTempsService struct {
	c *Client
}

func NewEmploiTempsService(c *Client) *EmploiTempsService {
	return &EmploiTempsService{c: c}
}

func (svc *EmploiTempsService) GetAll(ctx context.Context) ([]academic.EmploiTemps, error) {
	out := make([]academic.EmploiTemps, 0)
	err := svc.c.Get(ctx, "/emplois-temps", UnwrapDataData, &out)
	return out, err
}

// ByClasse lists the timetable of one class section.
func (svc *EmploiTempsService) ByClasse(ctx context.Context, classeID int) ([]academic.EmploiTemps, error) {
	out := make([]academic.EmploiTemps, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/emplois-temps?classe_id=%d", classeID), UnwrapDataData, &out)
	return out, err
}

// ByTeacher lists the slots one teacher is booked on.
func (svc *EmploiTempsService) ByTeacher(ctx context.Context, teacherID int) ([]academic.EmploiTemps, error) {
	out := make([]academic.EmploiTemps, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/emplois-temps?teacher_id=%d", teacherID), UnwrapDataData, &out)
	return out, err
}

func (svc *EmploiTempsService) Get(ctx context.Context, id int) (academic.EmploiTemps, error) {
	var out academic.EmploiTemps
	err := svc.c.Get(ctx, fmt.Sprintf("/emplois-temps/%d", id), UnwrapData, &out)
	return out, err
}

// Create places a new slot. The class's current timetable is fetched first
// and the slot checked against it, so a conflicting slot is refused before
// it reaches the backend.
func (svc *EmploiTempsService) Create(ctx context.Context, in academic.NewEmploiTemps) (academic.EmploiTemps, error) {
	var out academic.EmploiTemps
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return out, err
	}
	if err := svc.checkConflicts(ctx, in, 0); err != nil {
		return out, err
	}
	err := svc.c.Post(ctx, "/emplois-temps", in, UnwrapData, &out)
	return out, err
}

func (svc *EmploiTempsService) Update(ctx context.Context, id int, in academic.NewEmploiTemps) (academic.EmploiTemps, error) {
	var out academic.EmploiTemps
	in.Code = core.NormalizeCode(in.Code)
	if err := checkInput(in); err != nil {
		return out, err
	}
	if err := svc.checkConflicts(ctx, in, id); err != nil {
		return out, err
	}
	err := svc.c.Put(ctx, fmt.Sprintf("/emplois-temps/%d", id), in, UnwrapData, &out)
	return out, err
}

func (svc *EmploiTempsService) Delete(ctx context.Context, id int) error {
	return svc.c.Delete(ctx, fmt.Sprintf("/emplois-temps/%d", id))
}

// checkConflicts turns slot conflicts into a ValidationError; selfID
// excludes the slot being updated from its own comparison.
func (svc *EmploiTempsService) checkConflicts(ctx context.Context, in academic.NewEmploiTemps, selfID int) error {
	existing, err := svc.ByClasse(ctx, in.ClasseID)
	if err != nil {
		return err
	}
	if selfID != 0 {
		kept := existing[:0]
		for _, slot := range existing {
			if slot.ID != selfID {
				kept = append(kept, slot)
			}
		}
		existing = kept
	}
	conflicts := academic.CheckSlotConflicts(in, existing)
	if len(conflicts) == 0 {
		return nil
	}
	flds := make([]core.FieldError, 0, len(conflicts))
	for _, c := range conflicts {
		flds = append(flds, core.FieldError{Field: "jour", Error: c.String()})
	}
	return core.NewValidationError(errors.New("slot cannot be placed"), flds...)
}
