package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GenreDb struct {
	Id        string    `json:"id" bson:"_id"`
	TmdbId    int       `json:"tmdbId" bson:"tmdbId"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (db *DB) GetGenreById(ctx context.Context, id string) (GenreDb, error) {
	coll := db.Collection(GenresCollection)

	var genre GenreDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&genre); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return GenreDb{}, ErrRecordNotFound
		}
		return GenreDb{}, err
	}
	return genre, nil
}

// GetGenresByIds fetches every matching genre in one query. Callers compare
// result length against the requested ids to detect invalid ones.
func (db *DB) GetGenresByIds(ctx context.Context, ids []string) ([]GenreDb, error) {
	if len(ids) == 0 {
		return []GenreDb{}, nil
	}

	coll := db.Collection(GenresCollection)
	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var genres []GenreDb
	if err := cursor.All(ctx, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (db *DB) GetAllGenres(ctx context.Context) ([]GenreDb, error) {
	coll := db.Collection(GenresCollection)

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var genres []GenreDb
	if err := cursor.All(ctx, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// UpsertGenreByTmdbId inserts or refreshes a catalog entry keyed by its TMDB id.
func (db *DB) UpsertGenreByTmdbId(ctx context.Context, tmdbId int, name string) error {
	coll := db.Collection(GenresCollection)

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":      name,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"tmdbId":    tmdbId,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, bson.M{"tmdbId": tmdbId}, update, opts)
	return err
}
