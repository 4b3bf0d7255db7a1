// Package errors defines the sentinel errors shared by the generator, the
// validator and the tool appender. Callers match them with errors.Is; the
// wrapped message carries the specifics.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for known conditions.
var (
	// ErrUnknownTemplate indicates a template key missing from the registry.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrFileNotFound indicates a template asset or project file that does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrMarkerNotFound indicates the insertion marker is absent from a server file.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrManifestUnreadable indicates a project manifest that cannot be read or parsed.
	ErrManifestUnreadable = errors.New("manifest unreadable")

	// ErrIOFailure indicates any other filesystem failure.
	ErrIOFailure = errors.New("i/o failure")
)

// FromFS wraps a filesystem error with the matching sentinel: ErrFileNotFound
// for missing paths, ErrIOFailure for everything else. A nil err stays nil.
func FromFS(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	sentinel := ErrIOFailure
	if errors.Is(err, fs.ErrNotExist) {
		sentinel = ErrFileNotFound
	}
	return fmt.Errorf("%w: %s: %w", sentinel, fmt.Sprintf(format, args...), err)
}
