package groups

import (
	"context"

	"github.com/fatteme/MovieSwipe/internal/mongodb"
)

// Store is the slice of the database the group service needs. *mongodb.DB
// satisfies it; tests use an in-memory implementation.
type Store interface {
	CreateGroup(ctx context.Context, group mongodb.GroupDb) (mongodb.GroupDb, error)
	GetGroupById(ctx context.Context, id string) (mongodb.GroupDb, error)
	GetGroupByInvitationCode(ctx context.Context, code string) (mongodb.GroupDb, error)
	GetGroupsByMember(ctx context.Context, userId string) ([]mongodb.GroupDb, error)
	AddMemberToGroup(ctx context.Context, groupId, userId string) (mongodb.GroupDb, error)
	SetMemberPreferences(ctx context.Context, groupId, userId string, genreIds []string) (mongodb.GroupDb, error)
	RemoveMemberFromGroup(ctx context.Context, groupId, userId string) (mongodb.GroupDb, error)

	UserExists(ctx context.Context, id string) (bool, error)
	GetUsersByIds(ctx context.Context, ids []string) ([]mongodb.UserDb, error)

	GetGenresByIds(ctx context.Context, ids []string) ([]mongodb.GenreDb, error)
}
