package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/common"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "pw1", body["password"])
		require.Equal(t, "student", body["role"])

		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"abc","name":"Ann","email":"ann@x.com","role":"student","enrolledCourses":[],"results":[]}}`))
	}, nil)

	reg := models.Registration{
		User: models.User{
			Name:            "Ann",
			Email:           "ann@x.com",
			Role:            models.RoleStudent,
			EnrolledCourses: []string{},
			Results:         []string{},
		},
		Secret: "pw1",
	}
	user, err := c.CreateUser(context.Background(), reg)
	require.NoError(t, err)
	require.Equal(t, "abc", user.ID)
	require.Equal(t, "Ann", user.Name)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"User with this email already exists"}`))
	}, nil)

	_, err := c.CreateUser(context.Background(), models.Registration{})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestCreateUser_ConflictStatusIsDuplicate(t *testing.T) {
	// The backend signals a taken email with 409 regardless of message text.
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate key"}`))
	}, nil)

	_, err := c.CreateUser(context.Background(), models.Registration{})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestCreateUser_MissingID(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"Ann"}}`))
	}, nil)

	_, err := c.CreateUser(context.Background(), models.Registration{})
	require.Error(t, err)
}

func TestFindUserByEmail(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "ann@x.com", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"abc","email":"ann@x.com","password":"pw1"}}`))
	}, nil)

	reg, err := c.FindUserByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, "abc", reg.ID)
	require.Equal(t, "pw1", reg.Secret)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	for name, body := range map[string]string{
		"null data":    `{"success":true,"data":null}`,
		"missing data": `{"success":true}`,
	} {
		t.Run(name, func(t *testing.T) {
			payload := body
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			}, nil)

			_, err := c.FindUserByEmail(context.Background(), "who@x.com")
			require.ErrorIs(t, err, common.ErrNotFound)
		})
	}
}

func TestFindUserByEmail_BackendFailureIsNotNotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"database offline"}`))
	}, nil)

	_, err := c.FindUserByEmail(context.Background(), "ann@x.com")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrNotFound)
	require.ErrorContains(t, err, "database offline")
}

func TestUpdateEnrollment(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/users/abc/enroll", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "c7", body["courseId"])

		_, _ = w.Write([]byte(`{"success":true,"data":{"modifiedCount":1}}`))
	}, nil)

	modified, err := c.UpdateEnrollment(context.Background(), "abc", "c7")
	require.NoError(t, err)
	require.EqualValues(t, 1, modified)
}

func TestUpdateEnrollment_Failure(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"boom"}`))
	}, nil)

	_, err := c.UpdateEnrollment(context.Background(), "abc", "c7")
	require.Error(t, err)
}

func TestTestConnection(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/test-connection", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{"success":true}}`))
	}, nil)

	require.NoError(t, c.TestConnection(context.Background()))
}

func TestTestConnection_Unavailable(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, nil)

	err := c.TestConnection(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}
