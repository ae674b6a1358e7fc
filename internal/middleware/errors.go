package middleware

import "errors"

var (
	errMissingHeader = errors.New("missing authorization header")
	errInvalidHeader = errors.New("invalid authorization header format")
)
