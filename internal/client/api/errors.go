package api

import "errors"

var (
	// ErrUnavailable means the server could not be reached or is not ready.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the request lacked a valid session.
	ErrUnauthorized = errors.New("not logged in")
	// ErrAlreadyExists means the requested username is taken.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrServer covers remaining server-side failures.
	ErrServer = errors.New("server error")
)
