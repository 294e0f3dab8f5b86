package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCurrencyMismatch indicates arithmetic was attempted between amounts of
// different currencies. This is a programming or configuration error, never
// something to recover from at runtime.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrNoMatchingRule indicates a transaction amount fell into a gap not covered
// by any active charge bracket for its kind. The charge must not default to
// zero; the rule set needs fixing.
var ErrNoMatchingRule = errors.New("no matching charge rule")

// ErrAmbiguousRule indicates more than one active charge bracket matched the
// same amount. The validator prevents this on the normal write path, so seeing
// it means a rule was written past the validator.
var ErrAmbiguousRule = errors.New("ambiguous charge rule")

// ErrInvalidPrice indicates a price update would produce a negative price.
var ErrInvalidPrice = errors.New("invalid price")
