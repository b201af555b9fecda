package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAllIndexes creates all indexes for the users, groups and genres collections
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateUserIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	if err := CreateGroupIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create group indexes: %w", err)
	}

	if err := CreateGenreIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create genre indexes: %w", err)
	}

	return nil
}

// CreateGroupIndexes creates indexes for the groups collection.
// The unique index on invitationCode is the source of truth for code
// uniqueness; the coordinator's pre-check is only an optimization.
func CreateGroupIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(GroupsCollection)

	codeIndexName := "invitationCode_unique"
	codeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "invitationCode", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(codeIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, codeIndex, codeIndexName, reset); err != nil {
		return err
	}

	membersIndexName := "members_lookup"
	membersIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "members", Value: 1}},
		Options: options.Index().SetName(membersIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, membersIndex, membersIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateUserIndexes creates indexes for the users collection
func CreateUserIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(UsersCollection)

	// Create unique index on email (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	emailIndexName := "email_unique"
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(emailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"email": bson.M{"$type": "string"}},
					{"email": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, emailIndex, emailIndexName, reset); err != nil {
		return err
	}

	// Unique index on googleId, skipping users that signed up locally
	googleIndexName := "googleId_unique"
	googleIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "googleId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(googleIndexName).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"googleId": bson.M{"$type": "string"}},
					{"googleId": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, googleIndex, googleIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateGenreIndexes creates indexes for the genres collection
func CreateGenreIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(GenresCollection)

	tmdbIndexName := "tmdbId_unique"
	tmdbIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "tmdbId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(tmdbIndexName),
	}
	return createIndexIfNotExists(ctx, coll, tmdbIndex, tmdbIndexName, reset)
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		if !reset {
			fmt.Printf("ℹ️  Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
			return nil
		}
		_, err := coll.Indexes().DropOne(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		fmt.Printf("🗑️  Deleted index '%s' on collection '%s'\n", indexName, coll.Name())
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("✅ Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
