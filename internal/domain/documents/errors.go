package documents

import "errors"

var (
	// ErrNotFound indicates the document id does not exist in the
	// organization.
	ErrNotFound = errors.New("document not found")

	// ErrObjectMissing indicates a confirm-upload referenced a file key
	// that was never transferred to the object store (or has already
	// been cleaned up). Confirming such a key would register a record
	// with no bytes behind it.
	ErrObjectMissing = errors.New("stored object missing for file key")

	// ErrValidation indicates a malformed upload or update request.
	ErrValidation = errors.New("invalid document request")
)
