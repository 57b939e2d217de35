package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentsForCourse(t *testing.T) {
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses/c7/assignments", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"a1","courseId":"c7","title":"Week 1","description":"Intro exercises","pdfPath":"uploads/a1.pdf","createdAt":"2024-01-02"}]}`))
	})
	s := NewAssignmentService(client)

	assignments, err := s.ForCourse(context.Background(), "c7")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, "a1", assignments[0].ID)
	require.Equal(t, "Week 1", assignments[0].Title)
}

func TestAssignmentsForCourse_Failure(t *testing.T) {
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"course not found"}`))
	})
	s := NewAssignmentService(client)

	_, err := s.ForCourse(context.Background(), "nope")
	require.ErrorContains(t, err, "course not found")
}

func TestAssignmentPDFPath(t *testing.T) {
	require.Equal(t, "assignments/a1/pdf", AssignmentPDFPath("a1"))
}
