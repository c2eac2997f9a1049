package backend

import (
	"context"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/user"
)

// AuthPayload is what login and register answer with.
type AuthPayload struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

// Login exchanges credentials for a token and the matching account. The
// server rejection is propagated unchanged for the caller to present.
func (svc *AuthService) Login(ctx context.Context, creds user.Credentials) (AuthPayload, error) {
	creds.Email = core.CleanString(creds.Email, true /* lower */)
	if err := checkInput(creds); err != nil {
		return AuthPayload{}, err
	}
	var out AuthPayload
	err := svc.c.Post(ctx, "/auth/login", creds, UnwrapData, &out)
	return out, err
}

// Register creates the account then behaves like Login.
func (svc *AuthService) Register(ctx context.Context, nu user.NewUser) (AuthPayload, error) {
	nu.Name = core.CleanString(nu.Name)
	nu.Surname = core.CleanString(nu.Surname)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	if err := checkInput(nu); err != nil {
		return AuthPayload{}, err
	}
	var out AuthPayload
	err := svc.c.Post(ctx, "/auth/register", nu, UnwrapData, &out)
	return out, err
}

// Me fetches the account owning the current token; the one revalidation
// call the session bootstrap relies on.
func (svc *AuthService) Me(ctx context.Context) (user.User, error) {
	var out user.User
	err := svc.c.Get(ctx, "/auth/me", UnwrapData, &out)
	return out, err
}
