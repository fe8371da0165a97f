package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the request lacks valid authentication credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller does not own the resource.
var ErrForbidden = errors.New("forbidden")
