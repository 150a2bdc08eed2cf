package registry

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// EntryState describes what currently occupies a registry entry path
type EntryState int

const (
	// EntryAbsent means nothing exists at the entry path
	EntryAbsent EntryState = iota
	// EntryLinked means the entry is a symbolic link, possibly broken
	EntryLinked
	// EntryMaterialized means the entry is a real directory, not a link
	EntryMaterialized
	// EntryOther means the entry is some other file type (e.g. a regular file)
	EntryOther
)

// String returns a human-readable name for the state
func (s EntryState) String() string {
	switch s {
	case EntryAbsent:
		return "absent"
	case EntryLinked:
		return "symlink"
	case EntryMaterialized:
		return "directory"
	case EntryOther:
		return "file"
	default:
		return "unknown"
	}
}

// Entry is a snapshot of a registry entry taken with Inspect. LinkTarget
// is only populated for EntryLinked and holds the resolved target, or the
// raw link destination when the target no longer exists.
type Entry struct {
	Path       string
	Name       string
	State      EntryState
	LinkTarget string
}

// Exists reports whether anything occupies the entry path
func (e Entry) Exists() bool {
	return e.State != EntryAbsent
}

// Inspect classifies the filesystem object at path without following
// symbolic links. The snapshot reflects the state at call time only.
func Inspect(path string) (Entry, error) {
	entry := Entry{
		Path: path,
		Name: filepath.Base(path),
	}

	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		entry.State = EntryAbsent
		return entry, nil
	}
	if err != nil {
		return entry, errors.Wrapf(err, "failed to inspect registry entry %s", path)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		entry.State = EntryLinked
		entry.LinkTarget = resolveLinkTarget(path)
	case info.IsDir():
		entry.State = EntryMaterialized
	default:
		entry.State = EntryOther
	}

	return entry, nil
}

// resolveLinkTarget resolves a symlink fully, falling back to the raw link
// destination for broken links
func resolveLinkTarget(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	target, err := os.Readlink(path)
	if err != nil {
		return ""
	}
	return target
}
