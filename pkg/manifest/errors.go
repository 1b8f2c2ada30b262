package manifest

import "errors"

var (
	// ErrReadDocument indicates the document could not be read from disk
	ErrReadDocument = errors.New("could not read manifest document")

	// ErrBinaryDocument indicates the document does not look like text
	ErrBinaryDocument = errors.New("manifest document is not text")
)
