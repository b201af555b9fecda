package users

import (
	"errors"
	"net/http"
	"regexp"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
)

var ErrorMap = map[error]int{
	ErrUserNotFound:      http.StatusNotFound,
	ErrEmailAlreadyInUse: http.StatusBadRequest,
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
