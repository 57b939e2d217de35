package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/logging"
	"github.com/stretchr/testify/require"
)

func newAPIClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 5*time.Second, nil, logging.Default())
}

func TestCourseList_LocalFallbackServesDemoCatalog(t *testing.T) {
	s := NewCourseService(nil)

	courses, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 6)
	require.Equal(t, "Web Development Fundamentals", courses[0].Title)
}

func TestCourseGet_LocalFallback(t *testing.T) {
	s := NewCourseService(nil)

	course, err := s.Get(context.Background(), "5")
	require.NoError(t, err)
	require.Equal(t, "Cybersecurity Fundamentals", course.Title)

	_, err = s.Get(context.Background(), "nope")
	require.Error(t, err)
}

func TestCourseList_Remote(t *testing.T) {
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"9","title":"Go Basics","level":"beginner","price":100}]}`))
	})
	s := NewCourseService(client)

	courses, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Go Basics", courses[0].Title)
}

func TestCourseList_RemoteFailure(t *testing.T) {
	client := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"database offline"}`))
	})
	s := NewCourseService(client)

	_, err := s.List(context.Background())
	require.ErrorContains(t, err, "database offline")
}
