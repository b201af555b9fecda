package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/fatteme/MovieSwipe/internal/auth"
	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/services/users"
)

const defaultExpiresAt = time.Second * 60 * 60

func (api *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var authReq auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&authReq); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(authReq.Email) == "" {
		respondWithError(w, http.StatusBadRequest, "Field email cannot be null")
		return
	}
	if strings.TrimSpace(authReq.Password) == "" {
		respondWithError(w, http.StatusBadRequest, "Field password cannot be null")
		return
	}

	userDb, err := users.GetUserDbByEmail(api.Db, r.Context(), authReq.Email)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while looking for User")
		return
	}

	if err := auth.CheckPasswordHash(userDb.PasswordHash, authReq.Password); err != nil {
		if statusCode, ok := getErrorStatusCode(auth.ErrorsMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	token, err := auth.MakeJWT(userDb.Id, *api.Secret, defaultExpiresAt)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusOK, users.BuildLoginResponse(userDb, token))
}

// GoogleLoginHandler exchanges a verified Google ID token for an access
// token, creating the user on first login.
func (api *API) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req auth.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Token) == "" {
		respondWithError(w, http.StatusBadRequest, "Field token cannot be null")
		return
	}

	info, err := auth.VerifyGoogleIDToken(req.Token, api.GoogleClientId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(auth.ErrorsMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadGateway, "Failed to verify google token")
		return
	}

	userDb, err := users.FindOrCreateGoogleUser(api.Db, r.Context(), info)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to process user")
		return
	}

	token, err := auth.MakeJWT(userDb.Id, *api.Secret, defaultExpiresAt)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusOK, users.BuildLoginResponse(userDb, token))
}
