package mongodb

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection  = "users"
	GroupsCollection = "groups"
	GenresCollection = "genres"
)

// DB wraps a mongo database so services and handlers share a single handle.
type DB struct {
	database *mongo.Database
}

func NewDB(client *mongo.Client, name string) *DB {
	return &DB{database: client.Database(name)}
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

func (db *DB) Database() *mongo.Database {
	return db.database
}

// ConnectMongo connects to MongoDB using MONGODB_URI and verifies the connection with a ping.
func ConnectMongo(ctx context.Context) *mongo.Client {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		fmt.Fprintln(os.Stderr, "MONGODB_URI is required (e.g. mongodb://localhost:27017)")
		os.Exit(2)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mongo connect error: %v\n", err)
		os.Exit(1)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		fmt.Fprintf(os.Stderr, "mongo ping error: %v\n", err)
		os.Exit(1)
	}

	return client
}

func GetDatabaseName() string {
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "movieswipe"
	}
	return name
}
