package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a record fails field validation.
	// It is wrapped with the names of the failing fields.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedUser is returned when text cannot be decoded into a User:
	// it is not well formed, a field is missing, null, unknown, of the wrong
	// type, or trailing content follows the record.
	ErrMalformedUser = errors.New("malformed user record")

	// ErrUnencodableUser is returned when a User holds a value the textual
	// encodings cannot represent losslessly.
	ErrUnencodableUser = errors.New("user record cannot be encoded")

	// ErrUnknownFormat is returned for an unsupported record format name.
	ErrUnknownFormat = errors.New("unknown record format")
)
