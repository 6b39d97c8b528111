package services

import "errors"

// ErrInvalid marks validation failures so handlers can answer 400
// instead of 500.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound marks lookups for rows that do not exist.
var ErrNotFound = errors.New("not found")
