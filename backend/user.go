package backend

import (
	"context"
	"fmt"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/user"
)

type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

func (svc *UserService) GetAll(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0)
	err := svc.c.Get(ctx, "/users", UnwrapDataData, &out)
	return out, err
}

// ByRole lists the accounts holding one role.
func (svc *UserService) ByRole(ctx context.Context, role string) ([]user.User, error) {
	out := make([]user.User, 0)
	err := svc.c.Get(ctx, "/users?role="+role, UnwrapDataData, &out)
	return out, err
}

// ByClasse lists the students enrolled in one class section.
func (svc *UserService) ByClasse(ctx context.Context, classeID int) ([]user.User, error) {
	out := make([]user.User, 0)
	err := svc.c.Get(ctx, fmt.Sprintf("/users?classe_id=%d", classeID), UnwrapDataData, &out)
	return out, err
}

func (svc *UserService) Get(ctx context.Context, id int) (user.User, error) {
	var out user.User
	err := svc.c.Get(ctx, fmt.Sprintf("/users/%d", id), UnwrapData, &out)
	return out, err
}

func (svc *UserService) Create(ctx context.Context, in user.NewUser) (user.User, error) {
	in.Name = core.CleanString(in.Name)
	in.Surname = core.CleanString(in.Surname)
	in.Email = core.CleanString(in.Email, true /* lower */)
	if err := checkInput(in); err != nil {
		return user.User{}, err
	}
	var out user.User
	err := svc.c.Post(ctx, "/users", in, UnwrapData, &out)
	return out, err
}

func (svc *UserService) Update(ctx context.Context, id int, in user.UpdateUser) (user.User, error) {
	in.Name = core.CleanString(in.Name)
	in.Surname = core.CleanString(in.Surname)
	in.Email = core.CleanString(in.Email, true /* lower */)
	if err := checkInput(in); err != nil {
		return user.User{}, err
	}
	var out user.User
	err := svc.c.Put(ctx, fmt.Sprintf("/users/%d", id), in, UnwrapData, &out)
	return out, err
}

func (svc *UserService) Delete(ctx context.Context, id int) error {
	return svc.c.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
