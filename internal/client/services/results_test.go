package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestStudentResults(t *testing.T) {
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/student/results", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"r1","courseName":"Go Basics","score":88,"maxScore":100,"grade":"B+"}]}`))
	})
	s := NewResultService(client)

	results, err := s.StudentResults(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "B+", results[0].Grade)
}

func TestCreateResult(t *testing.T) {
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/results", r.URL.Path)

		var body models.Result
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body.ID = "r9"

		raw, err := json.Marshal(body)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"success":true,"data":` + string(raw) + `}`))
	})
	s := NewResultService(client)

	created, err := s.CreateResult(context.Background(), models.Result{
		StudentEmail: "ann@x.com",
		CourseID:     "1",
		Score:        95,
		MaxScore:     100,
		Grade:        "A",
	})
	require.NoError(t, err)
	require.Equal(t, "r9", created.ID)
	require.Equal(t, "A", created.Grade)
}

func TestDeleteResult(t *testing.T) {
	var gotMethod, gotPath string
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	s := NewResultService(client)

	require.NoError(t, s.DeleteResult(context.Background(), "r1"))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/admin/results/r1", gotPath)
}

func TestDeleteResult_Failure(t *testing.T) {
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"forbidden"}`))
	})
	s := NewResultService(client)

	err := s.DeleteResult(context.Background(), "r1")
	require.ErrorContains(t, err, "forbidden")
}
