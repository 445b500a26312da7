package exam

import "errors"

var (
	ErrNotFound             = errors.New("exam not found")
	ErrStatusConflict       = errors.New("exam is not in the expected status")
	ErrTerminalStatus       = errors.New("exam is in a terminal status")
	ErrSoftwareIncompatible = errors.New("radiologist software set does not include the exam software")
	ErrNotRadiologist       = errors.New("user is not a radiologist")
	ErrUrgentDueRequired    = errors.New("urgent exams require a due date")
	ErrForbidden            = errors.New("caller may not access this exam")
)
