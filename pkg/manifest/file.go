package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// sniffSize is how much of a document is inspected when deciding whether it is text.
const sniffSize = 512

// ParseFile reads the manifest document at path and parses it.
func ParseFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	if isBinary(data) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryDocument, filepath.Base(path))
	}

	return Parse(string(data)), nil
}

// isBinary checks the head of a document for null bytes, and for a high
// ratio of non-printable bytes when the document is not valid UTF-8.
func isBinary(data []byte) bool {
	head := data
	if len(head) > sniffSize {
		head = head[:sniffSize]
	}
	if len(head) == 0 {
		return false
	}

	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	if utf8.Valid(data) {
		return false
	}

	nonPrintable := 0
	for _, b := range head {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(head)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
