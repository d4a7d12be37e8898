package document

import "errors"

var (
	// ErrDocumentTooLarge is returned when the supplied markup exceeds the configured limit.
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")
	// ErrMalformedDocument is returned when the markup cannot be parsed at all.
	ErrMalformedDocument = errors.New("malformed document")
)
