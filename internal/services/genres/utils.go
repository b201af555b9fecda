package genres

import (
	"errors"
	"net/http"
)

var ErrGenreNotFound = errors.New("genre not found")

var ErrorMap = map[error]int{
	ErrGenreNotFound: http.StatusNotFound,
}
