package main

import (
	"context"
	"flag"
	"log"

	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"github.com/joho/godotenv"
)

// One-shot tool that creates the unique indexes the service depends on,
// most importantly groups.invitationCode.
func main() {
	godotenv.Load()

	reset := flag.Bool("reset", false, "drop and recreate existing indexes")
	flag.Parse()

	ctx := context.Background()
	client := mongodb.ConnectMongo(ctx)
	defer client.Disconnect(ctx)

	db := client.Database(mongodb.GetDatabaseName())

	if err := mongodb.CreateAllIndexes(ctx, db, *reset); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}
}
