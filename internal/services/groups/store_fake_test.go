package groups

import (
	"context"
	"sync"

	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory Store that mirrors the store-level guarantees the
// coordinator relies on: a unique constraint on invitationCode, set semantics
// on membership and per-key preference writes.
type fakeStore struct {
	mu          sync.Mutex
	groups      map[string]mongodb.GroupDb
	codes       map[string]string // invitationCode -> groupId
	users       map[string]mongodb.UserDb
	genres      map[string]mongodb.GenreDb
	failInserts int // next N inserts fail with a duplicate-key error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		groups: map[string]mongodb.GroupDb{},
		codes:  map[string]string{},
		users:  map[string]mongodb.UserDb{},
		genres: map[string]mongodb.GenreDb{},
	}
}

func (s *fakeStore) addUser(name, email string) mongodb.UserDb {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := mongodb.UserDb{
		Id:    primitive.NewObjectID().Hex(),
		Name:  name,
		Email: email,
	}
	s.users[user.Id] = user
	return user
}

func (s *fakeStore) addGenre(name string, tmdbId int) mongodb.GenreDb {
	s.mu.Lock()
	defer s.mu.Unlock()
	genre := mongodb.GenreDb{
		Id:     primitive.NewObjectID().Hex(),
		TmdbId: tmdbId,
		Name:   name,
	}
	s.genres[genre.Id] = genre
	return genre
}

func copyGroup(g mongodb.GroupDb) mongodb.GroupDb {
	out := g
	out.Members = append([]string(nil), g.Members...)
	out.Preferences = make(map[string][]string, len(g.Preferences))
	for k, v := range g.Preferences {
		out.Preferences[k] = append([]string(nil), v...)
	}
	return out
}

func (s *fakeStore) CreateGroup(_ context.Context, group mongodb.GroupDb) (mongodb.GroupDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failInserts > 0 {
		s.failInserts--
		return mongodb.GroupDb{}, mongodb.ErrDuplicateInvitationCode
	}
	if _, taken := s.codes[group.InvitationCode]; taken {
		return mongodb.GroupDb{}, mongodb.ErrDuplicateInvitationCode
	}

	group.Id = primitive.NewObjectID().Hex()
	if group.Preferences == nil {
		group.Preferences = map[string][]string{}
	}
	s.groups[group.Id] = copyGroup(group)
	s.codes[group.InvitationCode] = group.Id
	return copyGroup(group), nil
}

func (s *fakeStore) GetGroupById(_ context.Context, id string) (mongodb.GroupDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[id]
	if !ok {
		return mongodb.GroupDb{}, mongodb.ErrRecordNotFound
	}
	return copyGroup(group), nil
}

func (s *fakeStore) GetGroupByInvitationCode(_ context.Context, code string) (mongodb.GroupDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.codes[code]
	if !ok {
		return mongodb.GroupDb{}, mongodb.ErrRecordNotFound
	}
	return copyGroup(s.groups[id]), nil
}

func (s *fakeStore) GetGroupsByMember(_ context.Context, userId string) ([]mongodb.GroupDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []mongodb.GroupDb
	for _, g := range s.groups {
		for _, m := range g.Members {
			if m == userId {
				out = append(out, copyGroup(g))
				break
			}
		}
	}
	return out, nil
}

func (s *fakeStore) AddMemberToGroup(_ context.Context, groupId, userId string) (mongodb.GroupDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[groupId]
	if !ok {
		return mongodb.GroupDb{}, mongodb.ErrRecordNotFound
	}
	present := false
	for _, m := range group.Members {
		if m == userId {
			present = true
			break
		}
	}
	if !present {
		group.Members = append(group.Members, userId)
	}
	s.groups[groupId] = group
	return copyGroup(group), nil
}

func (s *fakeStore) SetMemberPreferences(_ context.Context, groupId, userId string, genreIds []string) (mongodb.GroupDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[groupId]
	if !ok {
		return mongodb.GroupDb{}, mongodb.ErrRecordNotFound
	}
	group.Preferences[userId] = append([]string(nil), genreIds...)
	s.groups[groupId] = group
	return copyGroup(group), nil
}

func (s *fakeStore) RemoveMemberFromGroup(_ context.Context, groupId, userId string) (mongodb.GroupDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[groupId]
	if !ok {
		return mongodb.GroupDb{}, mongodb.ErrRecordNotFound
	}
	members := group.Members[:0:0]
	for _, m := range group.Members {
		if m != userId {
			members = append(members, m)
		}
	}
	group.Members = members
	delete(group.Preferences, userId)
	s.groups[groupId] = group
	return copyGroup(group), nil
}

func (s *fakeStore) UserExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok, nil
}

func (s *fakeStore) GetUsersByIds(_ context.Context, ids []string) ([]mongodb.UserDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mongodb.UserDb, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeStore) GetGenresByIds(_ context.Context, ids []string) ([]mongodb.GenreDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	out := make([]mongodb.GenreDb, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if g, ok := s.genres[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}
