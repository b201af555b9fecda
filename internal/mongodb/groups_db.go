package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type GroupDb struct {
	Id             string              `json:"id" bson:"_id"`
	Name           string              `json:"name" bson:"name"`
	OwnerId        string              `json:"ownerId" bson:"ownerId"`
	Members        []string            `json:"members" bson:"members"`
	InvitationCode string              `json:"invitationCode" bson:"invitationCode"`
	Preferences    map[string][]string `json:"preferences" bson:"preferences"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) CreateGroup(ctx context.Context, group GroupDb) (GroupDb, error) {
	coll := db.Collection(GroupsCollection)

	group.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now
	if group.Preferences == nil {
		group.Preferences = map[string][]string{}
	}

	_, err := coll.InsertOne(ctx, group)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return GroupDb{}, ErrDuplicateInvitationCode
		}
		return GroupDb{}, err
	}

	return group, nil
}

func (db *DB) GetGroupById(ctx context.Context, id string) (GroupDb, error) {
	coll := db.Collection(GroupsCollection)

	var group GroupDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return GroupDb{}, ErrRecordNotFound
		}
		return GroupDb{}, err
	}
	return group, nil
}

func (db *DB) GetGroupByInvitationCode(ctx context.Context, code string) (GroupDb, error) {
	coll := db.Collection(GroupsCollection)

	var group GroupDb
	err := coll.FindOne(ctx, bson.M{"invitationCode": code}).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return GroupDb{}, ErrRecordNotFound
		}
		return GroupDb{}, err
	}
	return group, nil
}

func (db *DB) GetGroupsByMember(ctx context.Context, userId string) ([]GroupDb, error) {
	coll := db.Collection(GroupsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"members": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []GroupDb
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// AddMemberToGroup appends a user to the member set with $addToSet, so two
// concurrent joins against the same group cannot drop a member.
func (db *DB) AddMemberToGroup(ctx context.Context, groupId, userId string) (GroupDb, error) {
	coll := db.Collection(GroupsCollection)

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var group GroupDb
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": groupId},
		bson.M{
			"$addToSet": bson.M{"members": userId},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
		opts,
	).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return GroupDb{}, ErrRecordNotFound
		}
		return GroupDb{}, err
	}
	return group, nil
}

// SetMemberPreferences replaces the preference entry for a single member.
// Writes for different members touch different map keys and do not conflict.
func (db *DB) SetMemberPreferences(ctx context.Context, groupId, userId string, genreIds []string) (GroupDb, error) {
	coll := db.Collection(GroupsCollection)

	if genreIds == nil {
		genreIds = []string{}
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var group GroupDb
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": groupId},
		bson.M{"$set": bson.M{
			fmt.Sprintf("preferences.%s", userId): genreIds,
			"updatedAt":                           time.Now(),
		}},
		opts,
	).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return GroupDb{}, ErrRecordNotFound
		}
		return GroupDb{}, err
	}
	return group, nil
}

// RemoveMemberFromGroup pulls the user from the member set and drops their
// preference entry in the same update, so no orphaned keys remain.
func (db *DB) RemoveMemberFromGroup(ctx context.Context, groupId, userId string) (GroupDb, error) {
	coll := db.Collection(GroupsCollection)

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var group GroupDb
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": groupId},
		bson.M{
			"$pull":  bson.M{"members": userId},
			"$unset": bson.M{fmt.Sprintf("preferences.%s", userId): ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		},
		opts,
	).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return GroupDb{}, ErrRecordNotFound
		}
		return GroupDb{}, err
	}
	return group, nil
}
