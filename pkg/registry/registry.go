// Package registry maps an install scope to an on-disk skill registry
// location and inspects the state of individual registry entries.
// Installed skills live under <home>/.claude/skills (personal scope) or
// <cwd>/.claude/skills (project scope) as symbolic links back to their
// source folders.
package registry

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Scope selects which registry an operation targets
type Scope string

const (
	// ScopePersonal targets the registry under the user's home directory
	ScopePersonal Scope = "personal"
	// ScopeProject targets the registry under the current working directory
	ScopeProject Scope = "project"
)

const registrySubdir = ".claude/skills"

// Registry resolves scope-keyed registry locations. Roots are explicit so
// tests can substitute deterministic directories instead of the ambient
// home directory and working directory.
type Registry struct {
	homeDir string
	workDir string
}

// Option is a function that configures a Registry
type Option func(*Registry) error

// WithHomeDir overrides the root used for the personal scope
func WithHomeDir(dir string) Option {
	return func(r *Registry) error {
		r.homeDir = dir
		return nil
	}
}

// WithWorkDir overrides the root used for the project scope
func WithWorkDir(dir string) Option {
	return func(r *Registry) error {
		r.workDir = dir
		return nil
	}
}

// New creates a Registry rooted at the process environment by default
// (user home directory and current working directory)
func New(opts ...Option) (*Registry, error) {
	r := &Registry{}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.homeDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user home directory")
		}
		r.homeDir = homeDir
	}

	if r.workDir == "" {
		workDir, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get current working directory")
		}
		r.workDir = workDir
	}

	return r, nil
}

// BaseDir returns the registry base directory for the given scope without
// touching the filesystem
func (r *Registry) BaseDir(scope Scope) (string, error) {
	switch scope {
	case ScopePersonal:
		return filepath.Join(r.homeDir, registrySubdir), nil
	case ScopeProject:
		return filepath.Join(r.workDir, registrySubdir), nil
	default:
		return "", errors.Errorf("unknown scope %q", scope)
	}
}

// EnsureBaseDir creates the registry base directory for the scope,
// including missing ancestors. It is a no-op when the directory already
// exists.
func (r *Registry) EnsureBaseDir(scope Scope) (string, error) {
	baseDir, err := r.BaseDir(scope)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create registry directory %s", baseDir)
	}

	return baseDir, nil
}

// EntryPath returns the registry entry path for a skill name under the
// given scope
func (r *Registry) EntryPath(scope Scope, name string) (string, error) {
	baseDir, err := r.BaseDir(scope)
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, name), nil
}
