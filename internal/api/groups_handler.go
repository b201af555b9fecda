package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fatteme/MovieSwipe/internal/auth"
	"github.com/fatteme/MovieSwipe/internal/generics"
	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/services/groups"
)

const maxGroupNameLength = 100

func (api *API) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req groups.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "Group name is required")
		return
	}
	if len(name) > maxGroupNameLength {
		respondWithError(w, http.StatusBadRequest, "Group name must be 100 characters or less")
		return
	}

	group, err := groups.CreateGroup(api.Db, r.Context(), user.Id, name)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(groups.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create group")
		return
	}

	respondWithJSON(w, http.StatusCreated, group)
}

func (api *API) GetGroup(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	groupId := r.PathValue("id")
	if groupId == "" {
		respondWithError(w, http.StatusBadRequest, "Group id is required")
		return
	}

	includePreferences := parseUrlQueryToBool(r.URL.Query().Get("includePreferences"))

	group, err := groups.GetGroupById(api.Db, r.Context(), groupId, user.Id, includePreferences)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(groups.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while getting group")
		return
	}

	respondWithJSON(w, http.StatusOK, group)
}

func (api *API) GetUserGroups(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	page := generics.StringToInt(r.URL.Query().Get("page"))
	size := generics.StringToInt(r.URL.Query().Get("size"))

	userGroups, err := groups.GetUserGroups(api.Db, r.Context(), user.Id, page, size)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while getting groups")
		return
	}

	respondWithJSON(w, http.StatusOK, userGroups)
}

func (api *API) JoinGroup(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req groups.JoinGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	code := strings.TrimSpace(req.InvitationCode)
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "Invitation code is required")
		return
	}

	group, err := groups.JoinGroup(api.Db, r.Context(), code, user.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(groups.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while joining group")
		return
	}

	respondWithJSON(w, http.StatusOK, group)
}

func (api *API) UpdateGroupPreferences(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	groupId := r.PathValue("id")
	if groupId == "" {
		respondWithError(w, http.StatusBadRequest, "Group id is required")
		return
	}

	var req groups.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	group, err := groups.UpdateMemberPreferences(api.Db, r.Context(), groupId, user.Id, req.GenreIds)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(groups.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while updating preferences")
		return
	}

	respondWithJSON(w, http.StatusOK, group)
}

func (api *API) GetGroupPreferences(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	groupId := r.PathValue("id")
	if groupId == "" {
		respondWithError(w, http.StatusBadRequest, "Group id is required")
		return
	}

	prefs, err := groups.GetMemberPreferences(api.Db, r.Context(), groupId, user.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(groups.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while getting preferences")
		return
	}

	respondWithJSON(w, http.StatusOK, prefs)
}

func (api *API) RemoveGroupMember(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	groupId := r.PathValue("id")
	targetId := r.PathValue("userId")
	if groupId == "" || targetId == "" {
		respondWithError(w, http.StatusBadRequest, "Group id and user id are required")
		return
	}

	group, err := groups.RemoveMember(api.Db, r.Context(), groupId, user.Id, targetId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(groups.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while removing member")
		return
	}

	respondWithJSON(w, http.StatusOK, group)
}
