package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("with explicit roots", func(t *testing.T) {
		homeDir := t.TempDir()
		workDir := t.TempDir()

		reg, err := New(WithHomeDir(homeDir), WithWorkDir(workDir))
		require.NoError(t, err)
		assert.Equal(t, homeDir, reg.homeDir)
		assert.Equal(t, workDir, reg.workDir)
	})

	t.Run("defaults to process environment", func(t *testing.T) {
		reg, err := New()
		require.NoError(t, err)

		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)
		workDir, err := os.Getwd()
		require.NoError(t, err)

		assert.Equal(t, homeDir, reg.homeDir)
		assert.Equal(t, workDir, reg.workDir)
	})
}

func TestBaseDir(t *testing.T) {
	homeDir := t.TempDir()
	workDir := t.TempDir()
	reg, err := New(WithHomeDir(homeDir), WithWorkDir(workDir))
	require.NoError(t, err)

	t.Run("personal scope roots at home", func(t *testing.T) {
		baseDir, err := reg.BaseDir(ScopePersonal)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(homeDir, ".claude", "skills"), baseDir)
	})

	t.Run("project scope roots at working directory", func(t *testing.T) {
		baseDir, err := reg.BaseDir(ScopeProject)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(workDir, ".claude", "skills"), baseDir)
	})

	t.Run("unknown scope", func(t *testing.T) {
		_, err := reg.BaseDir(Scope("global"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown scope")
	})

	t.Run("is a pure function with no side effects", func(t *testing.T) {
		baseDir, err := reg.BaseDir(ScopePersonal)
		require.NoError(t, err)
		assert.NoDirExists(t, baseDir)
	})
}

func TestEnsureBaseDir(t *testing.T) {
	t.Run("creates the directory and missing ancestors", func(t *testing.T) {
		homeDir := t.TempDir()
		reg, err := New(WithHomeDir(homeDir), WithWorkDir(t.TempDir()))
		require.NoError(t, err)

		baseDir, err := reg.EnsureBaseDir(ScopePersonal)
		require.NoError(t, err)
		assert.DirExists(t, baseDir)
	})

	t.Run("is a no-op when already present", func(t *testing.T) {
		homeDir := t.TempDir()
		reg, err := New(WithHomeDir(homeDir), WithWorkDir(t.TempDir()))
		require.NoError(t, err)

		first, err := reg.EnsureBaseDir(ScopePersonal)
		require.NoError(t, err)
		second, err := reg.EnsureBaseDir(ScopePersonal)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("fails when blocked by a non-directory file", func(t *testing.T) {
		homeDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".claude"), []byte("in the way"), 0o644))

		reg, err := New(WithHomeDir(homeDir), WithWorkDir(t.TempDir()))
		require.NoError(t, err)

		_, err = reg.EnsureBaseDir(ScopePersonal)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create registry directory")
	})
}

func TestEntryPath(t *testing.T) {
	homeDir := t.TempDir()
	reg, err := New(WithHomeDir(homeDir), WithWorkDir(t.TempDir()))
	require.NoError(t, err)

	path, err := reg.EntryPath(ScopePersonal, "weather-skill")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".claude", "skills", "weather-skill"), path)

	_, err = reg.EntryPath(Scope("bogus"), "weather-skill")
	assert.Error(t, err)
}
