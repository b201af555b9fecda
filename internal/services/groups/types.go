package groups

import (
	"time"

	"github.com/fatteme/MovieSwipe/internal/services/genres"
)

// Member is a group member resolved to display fields, so callers never need
// a second lookup to render a group.
type Member struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GroupResponse struct {
	Id             string                    `json:"id"`
	Name           string                    `json:"name"`
	Owner          Member                    `json:"owner"`
	Members        []Member                  `json:"members"`
	InvitationCode string                    `json:"invitationCode"`
	Preferences    map[string][]genres.Genre `json:"preferences,omitempty"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type JoinGroupRequest struct {
	InvitationCode string `json:"invitationCode"`
}

type UpdatePreferencesRequest struct {
	GenreIds []string `json:"genreIds"`
}

// PreferencesResponse is the per-member preference snapshot an aggregation
// feature would consume. Every member appears, submitted or not.
type PreferencesResponse struct {
	GroupId     string                    `json:"groupId"`
	Preferences map[string][]genres.Genre `json:"preferences"`
}
