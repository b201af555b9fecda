package api

import "net/http"

func (api *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "MovieSwipe API",
	})
}
