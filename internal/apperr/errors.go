package apperr

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrMalformed   = errors.New("malformed data")
	ErrInvalidMood = errors.New("invalid mood")
)
