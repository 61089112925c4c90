package application

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidDomain is returned when a domain filter names a value not
	// currently present in the idea collection.
	ErrInvalidDomain = errors.New("invalid domain filter")
)
