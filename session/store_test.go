package session

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gourbalissakh/scolaris/backend"
	"github.com/gourbalissakh/scolaris/core/user"
)

func newTestAuth(t *testing.T, handler http.Handler) *backend.AuthService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewAuthService(backend.NewClient(srv.URL, 2*time.Second))
}

func loginOK(t *testing.T) *backend.AuthService {
	return newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login", "/auth/register":
			w.Write([]byte(`{"data":{"token":"tok-abc","user":{"id":1,"name":"Awa","surname":"Diop","email":"awa@example.com","role":"student"}}}`))
		case "/auth/me":
			w.Write([]byte(`{"data":{"id":1,"name":"Awa","surname":"Diop","email":"awa@example.com","role":"student"}}`))
		}
	}))
}

func TestLoginPersistsTokenAndUserTogether(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	usr, err := store.Login(context.Background(), loginOK(t), user.Credentials{Email: "awa@example.com", Password: "s3cret-pass"})
	assert.NoError(t, err)
	assert.Equal(t, "Awa", usr.Name)
	assert.True(t, store.Authenticated())
	assert.Equal(t, "tok-abc", store.Token())

	tokenData, err := ioutil.ReadFile(filepath.Join(dir, tokenFile))
	assert.NoError(t, err)
	assert.Equal(t, "tok-abc", string(tokenData))
	_, err = os.Stat(filepath.Join(dir, userFile))
	assert.NoError(t, err)
}

func TestLoginRejectionLeavesStoreUntouched(t *testing.T) {
	auth := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	store := NewStore(t.TempDir())

	_, err := store.Login(context.Background(), auth, user.Credentials{Email: "x@example.com", Password: "wrong-pass"})
	assert.Error(t, err)
	assert.False(t, store.Authenticated())
}

func TestLogoutClearsEverything(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	_, err := store.Login(context.Background(), loginOK(t), user.Credentials{Email: "awa@example.com", Password: "s3cret-pass"})
	assert.NoError(t, err)

	store.Logout()

	assert.False(t, store.Authenticated())
	assert.Equal(t, "", store.Token())
	_, err = os.Stat(filepath.Join(dir, tokenFile))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, userFile))
	assert.True(t, os.IsNotExist(err))
}

func TestInitRevalidatesPersistedSession(t *testing.T) {
	dir := t.TempDir()
	seedSession(t, dir, "tok-abc")

	store := NewStore(dir)
	err := store.Init(context.Background(), loginOK(t))
	assert.NoError(t, err)
	assert.True(t, store.Authenticated())
}

func TestInitClearsOnServerRejection(t *testing.T) {
	dir := t.TempDir()
	seedSession(t, dir, "tok-stale")

	auth := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	store := NewStore(dir)
	err := store.Init(context.Background(), auth)
	assert.NoError(t, err)

	// fully cleared, never partially populated
	assert.False(t, store.Authenticated())
	assert.Equal(t, "", store.Token())
	_, ok := store.User()
	assert.False(t, ok)
	_, statErr := os.Stat(filepath.Join(dir, tokenFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInitWithNothingPersisted(t *testing.T) {
	store := NewStore(t.TempDir())
	err := store.Init(context.Background(), loginOK(t))
	assert.NoError(t, err)
	assert.False(t, store.Authenticated())
}

func seedSession(t *testing.T, dir, token string) {
	t.Helper()
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, tokenFile), []byte(token), 0o600))
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, userFile),
		[]byte(`{"id":1,"name":"Awa","surname":"Diop","email":"awa@example.com","role":"student"}`), 0o600))
}
