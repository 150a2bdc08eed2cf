package installer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Precondition and workflow failures. Each is terminal for the
// invocation; nothing is retried.
var (
	// ErrNotFound means the source skill folder does not exist
	ErrNotFound = errors.New("skill folder not found")
	// ErrNotADirectory means the source path exists but is not a directory
	ErrNotADirectory = errors.New("path is not a directory")
	// ErrMissingManifest means the source folder has no SKILL.md
	ErrMissingManifest = errors.New("SKILL.md not found")
	// ErrCancelled means the user declined the overwrite confirmation
	ErrCancelled = errors.New("installation cancelled")
)

// ValidationError carries the validator's failure message verbatim. The
// engine does not interpret why validation failed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// LinkError reports a link creation failure that happened after an
// existing registry entry was already removed. The entry is now absent
// rather than restored, which is a strictly worse state than before the
// call, so it is distinguished from failures that leave the registry
// untouched.
type LinkError struct {
	Dest string
	Err  error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to create symlink at %s after removing previous entry: %v", e.Dest, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}
