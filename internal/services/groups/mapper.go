package groups

import (
	"context"

	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"github.com/fatteme/MovieSwipe/internal/services/genres"
)

// materializeGroup resolves member ids to display fields, preserving the
// stored member order. When includePreferences is set, every member gets an
// entry in the preference map, resolved to genre objects (empty when the
// member has not submitted yet).
func materializeGroup(db Store, ctx context.Context, group mongodb.GroupDb, includePreferences bool) (GroupResponse, error) {
	users, err := db.GetUsersByIds(ctx, group.Members)
	if err != nil {
		return GroupResponse{}, err
	}

	usersById := make(map[string]mongodb.UserDb, len(users))
	for _, u := range users {
		usersById[u.Id] = u
	}

	resp := GroupResponse{
		Id:             group.Id,
		Name:           group.Name,
		InvitationCode: group.InvitationCode,
		Members:        make([]Member, 0, len(group.Members)),
		CreatedAt:      group.CreatedAt,
		UpdatedAt:      group.UpdatedAt,
	}

	for _, memberId := range group.Members {
		member := Member{Id: memberId}
		if u, ok := usersById[memberId]; ok {
			member.Name = u.Name
			member.Email = u.Email
		}
		resp.Members = append(resp.Members, member)
		if memberId == group.OwnerId {
			resp.Owner = member
		}
	}

	if includePreferences {
		prefs, err := resolvePreferences(db, ctx, group)
		if err != nil {
			return GroupResponse{}, err
		}
		resp.Preferences = prefs
	}

	return resp, nil
}

func resolvePreferences(db Store, ctx context.Context, group mongodb.GroupDb) (map[string][]genres.Genre, error) {
	prefs := make(map[string][]genres.Genre, len(group.Members))

	for _, memberId := range group.Members {
		genreIds := group.Preferences[memberId]
		if len(genreIds) == 0 {
			prefs[memberId] = []genres.Genre{}
			continue
		}

		dbGenres, err := db.GetGenresByIds(ctx, genreIds)
		if err != nil {
			return nil, err
		}
		prefs[memberId] = genres.MapDbGenresToApiGenres(dbGenres)
	}

	return prefs, nil
}

func isMember(group mongodb.GroupDb, userId string) bool {
	for _, m := range group.Members {
		if m == userId {
			return true
		}
	}
	return false
}
