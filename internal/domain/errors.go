package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrLikeNotFound    = errors.New("like not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrCannotLikeSelf  = errors.New("cannot like own profile")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)
