package api

import (
	"encoding/json"
	"net/http"

	"github.com/fatteme/MovieSwipe/internal/auth"
	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/services/users"
)

func (api *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req users.NewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Name, Email and Password fields are required.")
		return
	}

	if !users.IsValidEmail(req.Email) {
		respondWithError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	user, err := users.AddUser(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add user")
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

func (api *API) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	allUsers, err := users.GetAllUsers(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	respondWithJSON(w, http.StatusOK, users.AllUsersResponse{Users: allUsers})
}

// GetMe returns the authenticated user's profile.
func (api *API) GetMe(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	respondWithJSON(w, http.StatusOK, users.MapDbUserToApiUserResponse(*user))
}
