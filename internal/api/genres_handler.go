package api

import (
	"net/http"

	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/services/genres"
)

func (api *API) GetGenres(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	allGenres, err := genres.GetAllGenres(api.Db, r.Context(), api.TmdbApiKey)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch genres")
		return
	}

	respondWithJSON(w, http.StatusOK, genres.AllGenresResponse{Genres: allGenres})
}

func (api *API) GetGenreById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	genreId := r.PathValue("id")
	if genreId == "" {
		respondWithError(w, http.StatusBadRequest, "Genre id is required")
		return
	}

	genre, err := genres.GetGenreById(api.Db, r.Context(), genreId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(genres.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch genre")
		return
	}

	respondWithJSON(w, http.StatusOK, genre)
}
