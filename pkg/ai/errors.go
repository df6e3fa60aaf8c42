package ai

import "errors"

var (
	// ErrMalformedResponse marks a vendor reply that failed shape validation
	// (unparseable JSON, empty section list, broken evaluation rubric).
	ErrMalformedResponse = errors.New("malformed generation response")

	// ErrUnknownDocumentType marks a classification outside the known set.
	ErrUnknownDocumentType = errors.New("unknown document type")
)
