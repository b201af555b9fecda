package groups

import (
	"errors"
	"net/http"
)

var (
	ErrOwnerNotFound           = errors.New("owner not found")
	ErrCodeGenerationExhausted = errors.New("failed to generate a unique invitation code")
	ErrInvalidGroupId          = errors.New("invalid group id")
	ErrGroupNotFound           = errors.New("group not found")
	ErrAccessDenied            = errors.New("access denied: user is not a member of this group")
	ErrInvalidInvitationCode   = errors.New("invalid invitation code")
	ErrAlreadyMember           = errors.New("user is already a member of this group")
	ErrNotAMember              = errors.New("user is not a member of this group")
	ErrInvalidGenreIds         = errors.New("one or more genre ids are invalid")
	ErrNotOwner                = errors.New("just the owner of the group can perform this action")
	ErrCannotRemoveOwner       = errors.New("the owner cannot be removed from the group")
)

var ErrorMap = map[error]int{
	ErrOwnerNotFound:           http.StatusNotFound,
	ErrCodeGenerationExhausted: http.StatusInternalServerError,
	ErrInvalidGroupId:          http.StatusBadRequest,
	ErrGroupNotFound:           http.StatusNotFound,
	ErrAccessDenied:            http.StatusForbidden,
	ErrInvalidInvitationCode:   http.StatusNotFound,
	ErrAlreadyMember:           http.StatusBadRequest,
	ErrNotAMember:              http.StatusForbidden,
	ErrInvalidGenreIds:         http.StatusBadRequest,
	ErrNotOwner:                http.StatusForbidden,
	ErrCannotRemoveOwner:       http.StatusBadRequest,
}
