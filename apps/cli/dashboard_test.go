package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gourbalissakh/scolaris/core/user"
)

// fakeAcademy answers enough of the API for dashboard aggregation.
func fakeAcademy(failPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failPath != "" && r.URL.Path == failPath {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"data":{"token":"tok-abc","user":
				{"id":9,"name":"Awa","surname":"Diop","email":"awa@example.com","role":"student","classe_id":3}}}`))
		case "/filieres":
			w.Write([]byte(`{"data":{"data":[{"id":1,"nom":"Informatique","code":"INFO"}]}}`))
		case "/niveaux":
			w.Write([]byte(`{"data":{"data":[{"id":1,"nom":"Licence 1","filiere_id":1}]}}`))
		case "/classes":
			w.Write([]byte(`{"data":{"data":[
				{"id":3,"nom":"L1 Info A","code":"L1IA","filiere_id":1,"niveau_id":1,"capacite":40,"effectif":30}]}}`))
		case "/cours":
			w.Write([]byte(`{"data":{"data":[{"id":5,"nom":"Algorithmique","code":"ALG","credits":6,"coefficient":2}]}}`))
		case "/users":
			w.Write([]byte(`{"data":{"data":[
				{"id":9,"name":"Awa","surname":"Diop","email":"awa@example.com","role":"student"},
				{"id":10,"name":"Moussa","surname":"Fall","email":"moussa@example.com","role":"teacher"}]}}`))
		case "/emplois-temps":
			w.Write([]byte(`{"data":{"data":[
				{"id":1,"code":"ALG-A","classe_id":3,"cours_id":5,"teacher_id":10,
				 "jour":"Lundi","heure_debut":"08:00","heure_fin":"10:00"}]}}`))
		case "/notes":
			w.Write([]byte(`{"data":{"data":[
				{"id":1,"student_id":9,"cours_id":5,"valeur":12,"coefficient":1,
				 "type_evaluation":"devoir","semestre":"S1","date_evaluation":"2021-03-01"}]}}`))
		default:
			w.Write([]byte(`{"data":{"data":[]}}`))
		}
	})
}

func studentCreds() user.Credentials {
	return user.Credentials{Email: "awa@example.com", Password: "s3cret-pass"}
}

func TestStudentDashboard(t *testing.T) {
	cli, out := setup(t, fakeAcademy(""), "")
	_, err := cli.store.Login(context.Background(), cli.svcs.Auth, studentCreds())
	assert.NoError(t, err)

	err = cli.run(context.Background(), []string{"scolaris", "dashboard"})
	assert.NoError(t, err)

	assert.Contains(t, out.String(), "Etudiant Awa Diop")
	assert.Contains(t, out.String(), "Moyenne generale: 12.00/20")
}

func TestDashboardFailsWhenOneBranchFails(t *testing.T) {
	cli, out := setup(t, fakeAcademy("/notes"), "")
	_, err := cli.store.Login(context.Background(), cli.svcs.Auth, studentCreds())
	assert.NoError(t, err)

	err = cli.run(context.Background(), []string{"scolaris", "dashboard"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "could not load dashboard")
}

func TestDashboardRequiresSession(t *testing.T) {
	cli, out := setup(t, fakeAcademy(""), "")
	err := cli.run(context.Background(), []string{"scolaris", "dashboard"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "log in")
}
