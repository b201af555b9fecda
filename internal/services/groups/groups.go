package groups

import (
	"context"
	"errors"

	"github.com/fatteme/MovieSwipe/internal/generics"
	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateGroup validates the owner, obtains a unique invitation code and
// persists the new group with the owner as its only member.
//
// The code loop checks for an existing group first as an optimization, but
// relies on the unique index for correctness: a duplicate-key insert under
// concurrent creation re-enters the loop with a fresh code.
func CreateGroup(db Store, ctx context.Context, ownerId, name string) (GroupResponse, error) {
	logger := logx.FromContext(ctx)

	ok, err := db.UserExists(ctx, ownerId)
	if err != nil {
		return GroupResponse{}, err
	}
	if !ok {
		return GroupResponse{}, ErrOwnerNotFound
	}

	var created mongodb.GroupDb
	inserted := false
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := newInvitationCode()

		_, err := db.GetGroupByInvitationCode(ctx, code)
		if err == nil {
			continue // code taken, try another
		}
		if !errors.Is(err, mongodb.ErrRecordNotFound) {
			return GroupResponse{}, err
		}

		created, err = db.CreateGroup(ctx, mongodb.GroupDb{
			Name:           name,
			OwnerId:        ownerId,
			Members:        []string{ownerId},
			InvitationCode: code,
			Preferences:    map[string][]string{},
		})
		if err != nil {
			if errors.Is(err, mongodb.ErrDuplicateInvitationCode) {
				continue // lost the race, try another code
			}
			return GroupResponse{}, err
		}
		inserted = true
		break
	}

	if !inserted {
		return GroupResponse{}, ErrCodeGenerationExhausted
	}

	logger.Printf("Group %s created by user %s", created.Id, ownerId)
	return materializeGroup(db, ctx, created, false)
}

// GetGroupById loads a group for a caller, who must be a current member. The
// membership check lives here so no other entry point can bypass it.
func GetGroupById(db Store, ctx context.Context, groupId, callerId string, includePreferences bool) (GroupResponse, error) {
	if _, err := primitive.ObjectIDFromHex(groupId); err != nil {
		return GroupResponse{}, ErrInvalidGroupId
	}

	group, err := db.GetGroupById(ctx, groupId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return GroupResponse{}, ErrGroupNotFound
		}
		return GroupResponse{}, err
	}

	if !isMember(group, callerId) {
		return GroupResponse{}, ErrAccessDenied
	}

	return materializeGroup(db, ctx, group, includePreferences)
}

// GetUserGroups returns every group the user belongs to, materialized. A size
// of 0 disables pagination.
func GetUserGroups(db Store, ctx context.Context, userId string, page, size int) (generics.Page[GroupResponse], error) {
	dbGroups, err := db.GetGroupsByMember(ctx, userId)
	if err != nil {
		return generics.Page[GroupResponse]{}, err
	}

	responses := make([]GroupResponse, 0, len(dbGroups))
	for _, g := range dbGroups {
		resp, err := materializeGroup(db, ctx, g, false)
		if err != nil {
			return generics.Page[GroupResponse]{}, err
		}
		responses = append(responses, resp)
	}

	return generics.BuildPage(responses, page, size), nil
}

// JoinGroup adds a user to the group matching the invitation code. A second
// join by the same user is a client error, not an idempotent success.
func JoinGroup(db Store, ctx context.Context, invitationCode, userId string) (GroupResponse, error) {
	logger := logx.FromContext(ctx)

	group, err := db.GetGroupByInvitationCode(ctx, invitationCode)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return GroupResponse{}, ErrInvalidInvitationCode
		}
		return GroupResponse{}, err
	}

	if isMember(group, userId) {
		return GroupResponse{}, ErrAlreadyMember
	}

	updated, err := db.AddMemberToGroup(ctx, group.Id, userId)
	if err != nil {
		return GroupResponse{}, err
	}

	logger.Printf("User %s joined group %s", userId, group.Id)
	return materializeGroup(db, ctx, updated, false)
}

// UpdateMemberPreferences replaces the member's stored genre set with the
// submitted one. Validation is all-or-nothing: a single unknown genre id
// fails the whole call before any write happens.
func UpdateMemberPreferences(db Store, ctx context.Context, groupId, userId string, genreIds []string) (GroupResponse, error) {
	logger := logx.FromContext(ctx)

	group, err := db.GetGroupById(ctx, groupId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return GroupResponse{}, ErrGroupNotFound
		}
		return GroupResponse{}, err
	}

	if !isMember(group, userId) {
		return GroupResponse{}, ErrNotAMember
	}

	if len(genreIds) > 0 {
		found, err := db.GetGenresByIds(ctx, genreIds)
		if err != nil {
			return GroupResponse{}, err
		}
		if len(found) != len(genreIds) {
			return GroupResponse{}, ErrInvalidGenreIds
		}
	}

	updated, err := db.SetMemberPreferences(ctx, group.Id, userId, genreIds)
	if err != nil {
		return GroupResponse{}, err
	}

	logger.Printf("User %s updated preferences for group %s", userId, group.Id)
	return materializeGroup(db, ctx, updated, true)
}

// GetMemberPreferences returns the per-member preference snapshot for every
// member of the group. Only members may read it.
func GetMemberPreferences(db Store, ctx context.Context, groupId, callerId string) (PreferencesResponse, error) {
	group, err := db.GetGroupById(ctx, groupId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return PreferencesResponse{}, ErrGroupNotFound
		}
		return PreferencesResponse{}, err
	}

	if !isMember(group, callerId) {
		return PreferencesResponse{}, ErrNotAMember
	}

	prefs, err := resolvePreferences(db, ctx, group)
	if err != nil {
		return PreferencesResponse{}, err
	}

	return PreferencesResponse{GroupId: group.Id, Preferences: prefs}, nil
}

// RemoveMember lets the owner remove another member. The owner cannot be
// removed; the member's preference entry is cleaned up with the membership.
func RemoveMember(db Store, ctx context.Context, groupId, requesterId, targetId string) (GroupResponse, error) {
	logger := logx.FromContext(ctx)

	group, err := db.GetGroupById(ctx, groupId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return GroupResponse{}, ErrGroupNotFound
		}
		return GroupResponse{}, err
	}

	if group.OwnerId != requesterId {
		return GroupResponse{}, ErrNotOwner
	}
	if targetId == group.OwnerId {
		return GroupResponse{}, ErrCannotRemoveOwner
	}
	if !isMember(group, targetId) {
		return GroupResponse{}, ErrNotAMember
	}

	updated, err := db.RemoveMemberFromGroup(ctx, group.Id, targetId)
	if err != nil {
		return GroupResponse{}, err
	}

	logger.Printf("User %s removed from group %s by owner", targetId, group.Id)
	return materializeGroup(db, ctx, updated, false)
}
