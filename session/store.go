// Package session holds the two pieces of durable client state: the
// authenticated session (token + cached account) and the UI theme.
package session

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/gourbalissakh/scolaris/backend"
	"github.com/gourbalissakh/scolaris/core/user"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// Store is the authentication state container: one instance, initialized at
// application start, mutated only through its named actions. Token and
// cached user are persisted together and cleared together.
type Store struct {
	mu    sync.RWMutex
	dir   string
	token string
	usr   *user.User
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Token implements backend.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached account, if any.
func (s *Store) User() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usr == nil {
		return user.User{}, false
	}
	return *s.usr, true
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.usr != nil
}

// Login exchanges credentials and, on success, persists token and account
// together. A rejection propagates unchanged; state is untouched.
func (s *Store) Login(ctx context.Context, auth *backend.AuthService, creds user.Credentials) (user.User, error) {
	payload, err := auth.Login(ctx, creds)
	if err != nil {
		return user.User{}, err
	}
	if err := s.set(payload.Token, payload.User); err != nil {
		return user.User{}, err
	}
	return payload.User, nil
}

// Register has the same contract as Login, via the registration endpoint.
func (s *Store) Register(ctx context.Context, auth *backend.AuthService, nu user.NewUser) (user.User, error) {
	payload, err := auth.Register(ctx, nu)
	if err != nil {
		return user.User{}, err
	}
	if err := s.set(payload.Token, payload.User); err != nil {
		return user.User{}, err
	}
	return payload.User, nil
}

// Logout resets to unauthenticated, purely locally; no server call is made.
func (s *Store) Logout() {
	s.Clear()
}

// Clear wipes both persisted pieces and the in-memory state. Also the 401
// hook: whichever call the backend rejects ends the session entirely.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.usr = nil
	_ = os.Remove(filepath.Join(s.dir, tokenFile))
	_ = os.Remove(filepath.Join(s.dir, userFile))
}

// Init restores a persisted session at startup. A locally-expired token, or
// a server rejection when revalidating it, leaves the store fully cleared,
// never partially populated. This is the single lazy self-healing point.
func (s *Store) Init(ctx context.Context, auth *backend.AuthService) error {
	token, usr, err := s.loadPersisted()
	if err != nil || token == "" || usr == nil {
		s.Clear()
		return nil
	}

	if expired(token) {
		s.Clear()
		return nil
	}

	// make the token visible to the revalidation call
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	fresh, err := auth.Me(ctx)
	if err != nil {
		s.Clear()
		return nil
	}
	return s.set(token, fresh)
}

func (s *Store) set(token string, usr user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.Wrap(err, "session: creating state dir")
	}
	data, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "session: encoding user")
	}
	if err := ioutil.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "session: persisting token")
	}
	if err := ioutil.WriteFile(filepath.Join(s.dir, userFile), data, 0o600); err != nil {
		return errors.Wrap(err, "session: persisting user")
	}
	s.token = token
	s.usr = &usr
	return nil
}

func (s *Store) loadPersisted() (string, *user.User, error) {
	tokenData, err := ioutil.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return "", nil, err
	}
	usrData, err := ioutil.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return "", nil, err
	}
	var usr user.User
	if err := json.Unmarshal(usrData, &usr); err != nil {
		return "", nil, err
	}
	return string(tokenData), &usr, nil
}

// expired decodes the token's registered claims without verifying the
// signature (the secret is server-side) to skip a doomed revalidation call.
// An undecodable token is left for the server to judge.
func expired(token string) bool {
	claims := new(jwt.StandardClaims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return time.Now().Unix() >= claims.ExpiresAt
}
