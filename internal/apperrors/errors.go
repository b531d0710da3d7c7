package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidFilter indicates that a list query used an unrecognized filter value.
var ErrInvalidFilter = errors.New("invalid filter")

// ErrUpstream indicates that the external payment API was unreachable or
// returned a non-2xx status.
var ErrUpstream = errors.New("upstream payment API failure")
