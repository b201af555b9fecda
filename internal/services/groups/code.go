package groups

import "math/rand/v2"

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8

	// maxCodeAttempts bounds the generate-check-insert loop. Failing fast
	// after 10 tries trades a vanishingly small failure probability for
	// bounded latency.
	maxCodeAttempts = 10
)

// newInvitationCode returns an 8-character code over A-Z0-9. Codes only need
// collision resistance, not secrecy; the unique index on invitationCode is
// the actual uniqueness guarantee.
func newInvitationCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(code)
}
