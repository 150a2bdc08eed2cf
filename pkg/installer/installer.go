// Package installer implements the skill installation workflow: verify
// the source folder, delegate validation, resolve collisions with the
// existing registry entry, and establish a symbolic link from the
// registry to the source. The sole durable side effect is the registry
// entry's state transition; source folders are never mutated.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/skillctl/skillctl/pkg/logger"
	"github.com/skillctl/skillctl/pkg/registry"
)

const manifestName = "SKILL.md"

// symlink is swappable so tests can drive link-creation failures
var symlink = os.Symlink

// Validator produces a pass/fail verdict and a human-readable message
// for a skill directory. It must not mutate the filesystem.
type Validator interface {
	ValidateSkill(dir string) (ok bool, message string)
}

// ConfirmFunc answers an overwrite question. Injected so the engine is
// testable without a terminal and independent of the I/O mechanism.
type ConfirmFunc func(question string) bool

// Result describes a completed installation
type Result struct {
	Source            string // Resolved source skill directory
	Dest              string // Registry entry path, now a symlink to Source
	Scope             registry.Scope
	Replaced          bool   // Whether a pre-existing entry was removed
	ValidationMessage string // The validator's success summary
}

// Engine drives skill installations against a registry. Operations are
// synchronous and non-atomic: concurrent invocations against the same
// scope can race on the collision-resolution window.
type Engine struct {
	registry  *registry.Registry
	validator Validator
	confirm   ConfirmFunc
}

// New creates an install engine
func New(reg *registry.Registry, validator Validator, confirm ConfirmFunc) *Engine {
	return &Engine{
		registry:  reg,
		validator: validator,
		confirm:   confirm,
	}
}

// Install installs the skill folder at sourcePath into the registry for
// scope by creating a symbolic link named after the folder. Preconditions
// are checked before anything is mutated; an existing entry is only
// removed after the source has passed validation and the user has
// confirmed the overwrite.
func (e *Engine) Install(ctx context.Context, sourcePath string, scope registry.Scope) (*Result, error) {
	log := logger.G(ctx).WithField("scope", scope)

	source, err := ResolveSkillDir(sourcePath)
	if err != nil {
		return nil, err
	}
	log = log.WithField("source", source)

	if _, err := os.Stat(filepath.Join(source, manifestName)); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrMissingManifest, "in %s", source)
		}
		return nil, errors.Wrapf(err, "failed to check for %s in %s", manifestName, source)
	}

	log.Debug("validating skill")
	ok, message := e.validator.ValidateSkill(source)
	if !ok {
		return nil, &ValidationError{Message: message}
	}

	name := filepath.Base(source)
	destPath, err := e.registry.EntryPath(scope, name)
	if err != nil {
		return nil, err
	}

	entry, err := registry.Inspect(destPath)
	if err != nil {
		return nil, err
	}

	replaced := false
	if entry.Exists() {
		log.WithFields(map[string]interface{}{
			"existing": entry.Path,
			"state":    entry.State.String(),
			"target":   entry.LinkTarget,
		}).Debug("registry entry already exists")

		if !e.confirm(overwriteQuestion(entry)) {
			return nil, ErrCancelled
		}

		if err := removeEntry(entry); err != nil {
			return nil, err
		}
		replaced = true
		log.WithField("removed", entry.Path).Debug("removed existing registry entry")
	}

	if _, err := e.registry.EnsureBaseDir(scope); err != nil {
		return nil, err
	}

	if err := symlink(source, destPath); err != nil {
		if replaced {
			return nil, &LinkError{Dest: destPath, Err: err}
		}
		return nil, errors.Wrapf(err, "failed to create symlink at %s", destPath)
	}

	log.WithField("dest", destPath).Debug("created registry symlink")

	return &Result{
		Source:            source,
		Dest:              destPath,
		Scope:             scope,
		Replaced:          replaced,
		ValidationMessage: message,
	}, nil
}

// Remove deletes the registry entry for a skill name. Symbolic links are
// unlinked without following them; materialized directories are removed
// recursively. The skill's source folder is never touched.
func (e *Engine) Remove(ctx context.Context, name string, scope registry.Scope) (*registry.Entry, error) {
	// A name with path separators or dot components would resolve outside
	// the registry and delete whatever it lands on
	if name != filepath.Base(name) || name == "." || name == ".." {
		return nil, errors.Errorf("invalid skill name %q", name)
	}

	destPath, err := e.registry.EntryPath(scope, name)
	if err != nil {
		return nil, err
	}

	entry, err := registry.Inspect(destPath)
	if err != nil {
		return nil, err
	}

	if !entry.Exists() {
		return nil, errors.Errorf("skill '%s' is not installed in the %s registry", name, scope)
	}

	if err := removeEntry(entry); err != nil {
		return nil, err
	}

	logger.G(ctx).WithFields(map[string]interface{}{
		"scope":   scope,
		"removed": entry.Path,
	}).Debug("removed registry entry")

	return &entry, nil
}

// ResolveSkillDir turns sourcePath into an absolute, symlink-resolved
// directory path, applying the existence and is-directory preconditions
// shared by install and validate
func ResolveSkillDir(sourcePath string) (string, error) {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", sourcePath)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrNotFound, "%s", abs)
		}
		return "", errors.Wrapf(err, "failed to resolve %s", abs)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", resolved)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrNotADirectory, "%s", resolved)
	}

	return resolved, nil
}

// overwriteQuestion describes the existing entry so the operator can make
// an informed decision. The resolved link target is reported for
// visibility only; it does not affect the outcome.
func overwriteQuestion(entry registry.Entry) string {
	switch entry.State {
	case registry.EntryLinked:
		return fmt.Sprintf("Skill '%s' already exists at %s (symlink -> %s). Overwrite it?", entry.Name, entry.Path, entry.LinkTarget)
	case registry.EntryMaterialized:
		return fmt.Sprintf("Skill '%s' already exists at %s (directory). Overwrite it?", entry.Name, entry.Path)
	default:
		return fmt.Sprintf("Skill '%s' already exists at %s. Overwrite it?", entry.Name, entry.Path)
	}
}

// removeEntry deletes whatever occupies the entry path. Links are
// unlinked, never followed; only materialized directories are removed
// recursively.
func removeEntry(entry registry.Entry) error {
	var err error
	if entry.State == registry.EntryMaterialized {
		err = os.RemoveAll(entry.Path)
	} else {
		err = os.Remove(entry.Path)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to remove existing entry %s", entry.Path)
	}
	return nil
}
