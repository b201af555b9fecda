package main

import (
	"context"
	"log"
	"os"

	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"github.com/fatteme/MovieSwipe/internal/services/genres"
	"github.com/joho/godotenv"
)

// One-shot tool that syncs the genre catalog from TMDB.
func main() {
	godotenv.Load()

	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		log.Fatal("TMDB_API_KEY is required")
	}

	ctx := context.Background()
	client := mongodb.ConnectMongo(ctx)
	defer client.Disconnect(ctx)

	db := mongodb.NewDB(client, mongodb.GetDatabaseName())

	if err := genres.SyncGenres(db, ctx, apiKey); err != nil {
		log.Fatalf("failed to sync genres: %v", err)
	}

	allGenres, err := db.GetAllGenres(ctx)
	if err != nil {
		log.Fatalf("failed to read back genres: %v", err)
	}
	log.Printf("Genre catalog now has %d entries", len(allGenres))
}
