package calendar

import "errors"

var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrVacationNotFound = errors.New("vacation not found")
	ErrTitleRequired    = errors.New("meeting title is required")
	ErrInvalidRange     = errors.New("end must be after start")
	ErrNotOwner         = errors.New("only the creator can modify this entry")
)
