package mongodb

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found in the database")

	// ErrDuplicateInvitationCode surfaces the unique-index rejection on
	// groups.invitationCode so the coordinator can retry with a fresh code.
	ErrDuplicateInvitationCode = errors.New("invitation code already in use")
)
