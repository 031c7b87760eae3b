package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrRegistrationIDExists  = errors.New("registration id already exists")
	ErrInvalidVacationFilter = errors.New("invalid vacation filter")
)
