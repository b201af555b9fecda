package api

import (
	"github.com/fatteme/MovieSwipe/internal/mongodb"
)

type API struct {
	Db             *mongodb.DB
	Secret         *string
	GoogleClientId string
	TmdbApiKey     string
}

func NewAPI(db *mongodb.DB, secret *string, googleClientId, tmdbApiKey string) *API {
	return &API{
		Db:             db,
		Secret:         secret,
		GoogleClientId: googleClientId,
		TmdbApiKey:     tmdbApiKey,
	}
}

// PublicPaths lists "METHOD /path" routes the auth middleware skips.
var PublicPaths = map[string]bool{
	"GET /":             true,
	"POST /users":       true,
	"POST /login":       true,
	"POST /auth/google": true,
	"GET /genres":       true,
}
