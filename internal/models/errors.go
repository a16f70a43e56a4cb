package models

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserExists         = errors.New("user id already taken")
	ErrPostExists         = errors.New("post id already taken")
	ErrUnknownOwner       = errors.New("owning user does not exist")
)
