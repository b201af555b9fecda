package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/fatteme/MovieSwipe/internal/generics"
	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/tmdb"
)

// DiscoverMovies proxies TMDB discover for the given catalog genre ids,
// translating them to TMDB numeric ids first. Thin glue; no ranking here.
func (api *API) DiscoverMovies(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var genreIds []string
	if raw := strings.TrimSpace(r.URL.Query().Get("genres")); raw != "" {
		genreIds = strings.Split(raw, ",")
	}

	tmdbIds := make([]string, 0, len(genreIds))
	if len(genreIds) > 0 {
		found, err := api.Db.GetGenresByIds(r.Context(), genreIds)
		if err != nil {
			logger.Printf("ERROR: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve genres")
			return
		}
		if len(found) != len(genreIds) {
			respondWithError(w, http.StatusBadRequest, "One or more genre ids are invalid")
			return
		}
		for _, g := range found {
			tmdbIds = append(tmdbIds, strconv.Itoa(g.TmdbId))
		}
	}

	page := generics.StringToInt(r.URL.Query().Get("page"))

	body, err := tmdb.FetchDiscoverMovies(api.TmdbApiKey, tmdbIds, page)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadGateway, "Failed to fetch movies from TMDB")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to parse TMDB response")
		return
	}

	respondWithJSON(w, http.StatusOK, payload)
}
