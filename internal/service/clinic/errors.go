package clinic

import "errors"

var (
	ErrNotFound     = errors.New("clinic not found")
	ErrNameRequired = errors.New("clinic name is required")
	ErrTaxIDExists  = errors.New("a clinic with this tax id already exists")
	ErrHasExams     = errors.New("clinic still has exams and cannot be removed")
	ErrInvalidTaxID = errors.New("invalid tax id")
	ErrInvalidEmail = errors.New("invalid email address")
)
