package server

import (
	"log"
	"net/http"
	"os"

	"github.com/fatteme/MovieSwipe/internal/api"
	"github.com/fatteme/MovieSwipe/internal/mongodb"
)

// NewServer wires the routes and middlewares into a single handler.
func NewServer(db *mongodb.DB, tokenSecret string, googleClientId, tmdbApiKey string) http.Handler {
	a := api.NewAPI(db, &tokenSecret, googleClientId, tmdbApiKey)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", a.RootHandler)

	mux.HandleFunc("POST /users", a.CreateUser)
	mux.HandleFunc("GET /users", a.GetUsers)
	mux.HandleFunc("GET /users/me", a.GetMe)
	mux.HandleFunc("POST /login", a.LoginHandler)
	mux.HandleFunc("POST /auth/google", a.GoogleLoginHandler)

	mux.HandleFunc("GET /genres", a.GetGenres)
	mux.HandleFunc("GET /genres/{id}", a.GetGenreById)

	mux.HandleFunc("POST /groups", a.CreateGroup)
	mux.HandleFunc("GET /groups", a.GetUserGroups)
	mux.HandleFunc("GET /groups/{id}", a.GetGroup)
	mux.HandleFunc("POST /groups/join", a.JoinGroup)
	mux.HandleFunc("PUT /groups/{id}/preferences", a.UpdateGroupPreferences)
	mux.HandleFunc("GET /groups/{id}/preferences", a.GetGroupPreferences)
	mux.HandleFunc("DELETE /groups/{id}/members/{userId}", a.RemoveGroupMember)

	mux.HandleFunc("GET /movies/discover", a.DiscoverMovies)

	wrapped := AuthMiddleware(tokenSecret, db)(mux)
	return RequestIdMiddleware(wrapped)
}

func ListenAndServe(db *mongodb.DB, tokenSecret string, googleClientId, tmdbApiKey string) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(db, tokenSecret, googleClientId, tmdbApiKey),
	}

	log.Printf("Server is running on port %s", port)
	return server.ListenAndServe()
}
