// Package document loads the text a search runs over.
package document

import (
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// Read returns the whole file at path as text.
// The file must be valid UTF-8; anything else is an IO error.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.ReadError(path, err)
	}

	if !utf8.Valid(data) {
		return "", errors.EncodingError(path, data)
	}

	slog.Debug("document_loaded",
		slog.String("path", path),
		slog.Int("bytes", len(data)))

	return string(data), nil
}
