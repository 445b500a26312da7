package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email address is already in use")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role")
	ErrClientRequired     = errors.New("client role requires a clinic link")
	ErrClientNotFound     = errors.New("clinic not found")
	ErrInvalidSoftware    = errors.New("unknown viewer software")
	ErrSelfDelete         = errors.New("cannot delete your own account")
)
