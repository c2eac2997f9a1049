package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gourbalissakh/scolaris/backend"
	"github.com/gourbalissakh/scolaris/session"
)

func setup(t *testing.T, handler http.Handler, input string) (*commandLine, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	store := session.NewStore(dir)
	theme := session.NewTheme(dir, session.ThemeLight)
	client := backend.NewClient(srv.URL, 2*time.Second, backend.WithTokenSource(store))

	var out bytes.Buffer
	cli := newCommandLine(backend.NewServices(client), store, theme, &out, strings.NewReader(input))
	return cli, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	input      string
	wantErr    error
	wantOutput []string // substrings expected in output
	notOutput  []string // substrings that must not appear
}

func TestCommandLineUsage(t *testing.T) {
	tests := []cliTest{
		{name: "no args", args: nil, wantErr: errHelp, wantOutput: []string{"Usage:"}},
		{name: "unknown command", args: []string{"bursaries"}, wantErr: errHelp, wantOutput: []string{"Usage:"}},
		{name: "entity without action", args: []string{"filieres"}, wantErr: errHelp, wantOutput: []string{"Usage:"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, http.NotFoundHandler(), tt.input)
			err := cli.run(context.Background(), append([]string{"scolaris"}, tt.args...))
			assert.Equal(t, tt.wantErr, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func filiereFixtures() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"data":[
			{"id":1,"nom":"Informatique","code":"INFO"},
			{"id":2,"nom":"Gestion","code":"GES"}]}}`))
	})
}

func TestFilieresListSearch(t *testing.T) {
	tests := []cliTest{
		{
			name:       "no filter lists all",
			args:       []string{"filieres", "list"},
			wantOutput: []string{"Informatique", "Gestion"},
		},
		{
			name:       "search is case-insensitive",
			args:       []string{"filieres", "list", "-search", "INFOR"},
			wantOutput: []string{"Informatique"},
			notOutput:  []string{"Gestion"},
		},
		{
			name:       "search matches code",
			args:       []string{"filieres", "list", "-search", "ges"},
			wantOutput: []string{"Gestion"},
			notOutput:  []string{"Informatique"},
		},
		{
			name:       "no match renders empty state",
			args:       []string{"filieres", "list", "-search", "droit"},
			wantOutput: []string{"(no results)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, filiereFixtures(), "")
			err := cli.run(context.Background(), append([]string{"scolaris"}, tt.args...))
			assert.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
			for _, not := range tt.notOutput {
				assert.NotContains(t, out.String(), not)
			}
		})
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	var deleted bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`{"data":{"data":[{"id":2,"nom":"Gestion","code":"GES"}]}}`))
	})

	t.Run("declined", func(t *testing.T) {
		cli, out := setup(t, handler, "n\n")
		err := cli.run(context.Background(), []string{"scolaris", "filieres", "delete", "-id", "1"})
		assert.NoError(t, err)
		assert.False(t, deleted, "no DELETE may be issued without explicit confirmation")
		assert.Contains(t, out.String(), "delete cancelled")
	})

	t.Run("confirmed deletes then refetches", func(t *testing.T) {
		cli, out := setup(t, handler, "y\n")
		err := cli.run(context.Background(), []string{"scolaris", "filieres", "delete", "-id", "1"})
		assert.NoError(t, err)
		assert.True(t, deleted)
		// the refetched list no longer carries the removed record
		assert.Contains(t, out.String(), "Gestion")
		assert.NotContains(t, out.String(), "Informatique")
	})
}

func TestSaveErrorShowsEachFieldMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid","errors":{"code":["already taken"],"nom":["too short"]}}`))
	})
	cli, out := setup(t, handler, "")

	err := cli.run(context.Background(), []string{"scolaris", "filieres", "add", "-nom", "Droit", "-code", "drt"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "could not save filiere")
	assert.Contains(t, out.String(), "already taken")
	assert.Contains(t, out.String(), "too short")
}

func TestTransientFailureIsAWarning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	store := session.NewStore(dir)
	theme := session.NewTheme(dir, session.ThemeDark) // ASCII markers
	client := backend.NewClient(srv.URL, 20*time.Millisecond, backend.WithTokenSource(store))
	var out bytes.Buffer
	cli := newCommandLine(backend.NewServices(client), store, theme, &out, strings.NewReader(""))

	err := cli.run(context.Background(), []string{"scolaris", "filieres", "list"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "[warn]")
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, matchesSearch("", "anything"))
	assert.True(t, matchesSearch("INFO", "informatique"))
	assert.True(t, matchesSearch("  ges ", "Gestion"))
	assert.False(t, matchesSearch("droit", "Informatique", "INFO"))
}
