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

type UserDb struct {
	Id           string    `json:"id" bson:"_id"`
	GoogleId     string    `json:"googleId,omitempty" bson:"googleId,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Picture      string    `json:"picture,omitempty" bson:"picture,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash,omitempty"`
	IsActive     bool      `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (db *DB) CreateUser(ctx context.Context, user UserDb) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	user.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	_, err := coll.InsertOne(ctx, user)
	if err != nil {
		return UserDb{}, err
	}
	return user, nil
}

func (db *DB) GetUserById(ctx context.Context, id string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}
	return userDb, nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}
	return userDb, nil
}

func (db *DB) GetUserByGoogleId(ctx context.Context, googleId string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"googleId": googleId}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}
	return userDb, nil
}

// GetUsersByIds fetches the display fields for a batch of user ids in one query.
func (db *DB) GetUsersByIds(ctx context.Context, ids []string) ([]UserDb, error) {
	if len(ids) == 0 {
		return []UserDb{}, nil
	}

	coll := db.Collection(UsersCollection)
	filter := bson.M{"_id": bson.M{"$in": ids}}
	opts := options.Find().SetProjection(bson.M{
		"_id":   1,
		"name":  1,
		"email": 1,
	})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []UserDb
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (db *DB) UpdateUser(ctx context.Context, user UserDb) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	user.UpdatedAt = time.Now()
	_, err := coll.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{"$set": user})
	if err != nil {
		return UserDb{}, err
	}
	return user, nil
}

func (db *DB) UserExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(UsersCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (db *DB) GetAllUsers(ctx context.Context) ([]UserDb, error) {
	coll := db.Collection(UsersCollection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return []UserDb{}, err
	}
	defer cursor.Close(ctx)

	var allUsers []UserDb
	if err := cursor.All(ctx, &allUsers); err != nil {
		return []UserDb{}, err
	}
	return allUsers, nil
}
