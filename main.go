package main

import (
	"context"
	"log"
	"os"

	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"github.com/fatteme/MovieSwipe/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	tokenSecret := os.Getenv("TOKEN_SECRET")
	if tokenSecret == "" {
		log.Fatal("TOKEN_SECRET is required")
	}
	googleClientId := os.Getenv("GOOGLE_CLIENT_ID")
	tmdbApiKey := os.Getenv("TMDB_API_KEY")

	ctx := context.Background()
	client := mongodb.ConnectMongo(ctx)
	defer client.Disconnect(ctx)

	db := mongodb.NewDB(client, mongodb.GetDatabaseName())

	if err := server.ListenAndServe(db, tokenSecret, googleClientId, tmdbApiKey); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
