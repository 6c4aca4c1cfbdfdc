package service

import "errors"

// ErrInvalidInput marks data-driven validation failures. The HTTP layer maps
// errors wrapping this sentinel to a client error; anything else is a server
// error.
var ErrInvalidInput = errors.New("invalid input")
