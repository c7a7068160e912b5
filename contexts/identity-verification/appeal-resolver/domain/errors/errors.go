package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid appeal request")
	ErrNotSubject      = errors.New("caller is not the appeal subject")
	ErrNotAdmin        = errors.New("caller is not the administrator")
	ErrRequestNotFound = errors.New("verification request not found")
	ErrAppealNotFound  = errors.New("appeal not found")
	ErrCannotAppeal    = errors.New("request is not in an appealable state")
	ErrAppealActive    = errors.New("appeal already filed for subject")
	ErrAppealClosed    = errors.New("appeal already resolved")
)
