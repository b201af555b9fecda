package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/fatteme/MovieSwipe/internal/auth"
	"github.com/fatteme/MovieSwipe/internal/services/users"
	"github.com/stretchr/testify/require"
)

func addUser(t *testing.T, user users.NewUserRequest) (users.UserResponse, string) {
	t.Helper()

	// Add user
	postBody, err := json.Marshal(user)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/users",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var respBody users.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))

	// Get token
	authUser := auth.LoginRequest{
		Email:    user.Email,
		Password: user.Password,
	}
	token := getUserToken(t, authUser)

	return respBody, token
}

func getUserToken(t *testing.T, authUser auth.LoginRequest) string {
	t.Helper()

	postBody, err := json.Marshal(authUser)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/login",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var respBody users.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	require.NotEmpty(t, respBody.AccessToken)

	return respBody.AccessToken
}

// doAuthed performs an authenticated request against the test server.
func doAuthed(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, testServer.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
