package domain

import "errors"

// Domain errors (no external dependencies). Handlers match these with
// errors.Is and map each one to its own HTTP status and Arabic message.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateName      = errors.New("arabic name already exists")
	ErrValidation         = errors.New("invalid input")
	ErrHasChildren        = errors.New("category has child categories")
	ErrStorageUnavailable = errors.New("category storage unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
)
