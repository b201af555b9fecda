package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fatteme/MovieSwipe/internal/auth"
	"github.com/fatteme/MovieSwipe/internal/services/users"
	"github.com/stretchr/testify/require"
)

func TestUserRegistrationAndLogin(t *testing.T) {

	t.Run("Register and login successfully", func(t *testing.T) {
		resetDB(t)

		user, token := addUser(t, users.NewUserRequest{
			Name:     "testname",
			Email:    "test@example.com",
			Password: "testpass",
		})
		require.Equal(t, "testname", user.Name)
		require.Equal(t, "test@example.com", user.Email)
		require.NotEmpty(t, token)

		// The token resolves the user
		resp := doAuthed(t, http.MethodGet, "/users/me", token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me users.UserResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
		require.Equal(t, user.Id, me.Id)
	})

	t.Run("Login with wrong password returns 401", func(t *testing.T) {
		resetDB(t)

		addUser(t, users.NewUserRequest{
			Name:     "testname",
			Email:    "test@example.com",
			Password: "testpass",
		})

		postBody, err := json.Marshal(auth.LoginRequest{
			Email:    "test@example.com",
			Password: "wrongpass",
		})
		require.NoError(t, err)

		resp, err := http.Post(
			testServer.URL+"/login",
			"application/json",
			bytes.NewBuffer(postBody),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Duplicate email returns 400", func(t *testing.T) {
		resetDB(t)

		addUser(t, users.NewUserRequest{
			Name:     "testname",
			Email:    "test@example.com",
			Password: "testpass",
		})

		postBody, err := json.Marshal(users.NewUserRequest{
			Name:     "othername",
			Email:    "test@example.com",
			Password: "otherpass",
		})
		require.NoError(t, err)

		resp, err := http.Post(
			testServer.URL+"/users",
			"application/json",
			bytes.NewBuffer(postBody),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Invalid email format returns 400", func(t *testing.T) {
		resetDB(t)

		postBody, err := json.Marshal(users.NewUserRequest{
			Name:     "testname",
			Email:    "not-an-email",
			Password: "testpass",
		})
		require.NoError(t, err)

		resp, err := http.Post(
			testServer.URL+"/users",
			"application/json",
			bytes.NewBuffer(postBody),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
