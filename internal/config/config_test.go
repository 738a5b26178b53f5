package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Settings Loading:
// - Default() carries build defaults and no folder/extension overrides
// - Load() uses defaults when no config file exists
// - Load() loads folders and extensions from .moonlc/config.yml
// - Load() loads from .moonlc/config.yaml when present
// - Load() keeps an explicitly empty folder distinct from an absent one
// - Environment variables override config file values
// - A workspace .env file feeds environment overrides
// - Process environment wins over .env entries
// - Load() returns error for malformed YAML
// - Load() returns error for invalid build settings
// - Validate() aggregates multiple errors

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	configDir := filepath.Join(dir, ".moonlc")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, name), []byte(content), 0644))
}

// unsetForTest clears key for the duration of the test and restores it afterwards.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestDefault_ReturnsBuildDefaults(t *testing.T) {
	t.Parallel()

	s := Default()

	require.NotNil(t, s)
	assert.Equal(t, "moon", s.Build.Command)
	assert.Equal(t, 300, s.Build.Timeout)
	assert.Equal(t, 5*time.Minute, s.BuildTimeout())
	assert.Empty(t, s.FilePath)
	assert.Empty(t, s.LangExt)
	assert.NoError(t, Validate(s))
}

func TestLoad_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	s, err := NewLoader(t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultBuildCommand, s.Build.Command)
	assert.Equal(t, DefaultBuildTimeout, s.Build.Timeout)
	assert.Nil(t, s.folder(Notation))
	assert.Nil(t, s.folder(DefaultNotationKey))
	assert.Nil(t, s.extension(Notation))
}

func TestLoad_LoadsFromConfigYml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
filePath:
  moonbit:
    folder: moonbit
  default:
    folder: solutions
langExt:
  moonbit: .mbt
build:
  command: /opt/moon/bin/moon
  timeout: 60
`)

	s, err := NewLoader(dir).Load()
	require.NoError(t, err)

	require.NotNil(t, s.folder(Notation))
	assert.Equal(t, "moonbit", *s.folder(Notation))
	require.NotNil(t, s.folder(DefaultNotationKey))
	assert.Equal(t, "solutions", *s.folder(DefaultNotationKey))
	require.NotNil(t, s.extension(Notation))
	assert.Equal(t, ".mbt", *s.extension(Notation))
	assert.Equal(t, "/opt/moon/bin/moon", s.Build.Command)
	assert.Equal(t, time.Minute, s.BuildTimeout())
}

func TestLoad_LoadsFromConfigYaml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", `
filePath:
  default:
    folder: leetcode
`)

	s, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Nil(t, s.folder(Notation))
	require.NotNil(t, s.folder(DefaultNotationKey))
	assert.Equal(t, "leetcode", *s.folder(DefaultNotationKey))
}

func TestLoad_EmptyFolderIsPresent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
filePath:
  moonbit:
    folder: ""
  default:
    folder: solutions
`)

	s, err := NewLoader(dir).Load()
	require.NoError(t, err)

	require.NotNil(t, s.folder(Notation))
	assert.Equal(t, "", *s.folder(Notation))

	// The empty per-notation folder shadows the default folder
	loc := NewResolver(dir, s).ResolveWorkspaceLocation()
	assert.Equal(t, dir, loc.Root)
}

func TestLoad_EnvironmentVariablesOverrideConfigFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
filePath:
  moonbit:
    folder: from-file
build:
  timeout: 10
`)

	t.Setenv("MOONLC_FILEPATH_MOONBIT_FOLDER", "from-env")
	t.Setenv("MOONLC_BUILD_TIMEOUT", "42")

	s, err := NewLoader(dir).Load()
	require.NoError(t, err)

	require.NotNil(t, s.folder(Notation))
	assert.Equal(t, "from-env", *s.folder(Notation))
	assert.Equal(t, 42, s.Build.Timeout)
}

func TestLoad_DotEnvFeedsEnvironment(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	unsetForTest(t, "MOONLC_LANGEXT_MOONBIT")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MOONLC_LANGEXT_MOONBIT=moon\n"), 0644))

	s, err := NewLoader(dir).Load()
	require.NoError(t, err)

	require.NotNil(t, s.extension(Notation))
	assert.Equal(t, "moon", *s.extension(Notation))
}

func TestLoad_ProcessEnvironmentWinsOverDotEnv(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	t.Setenv("MOONLC_BUILD_COMMAND", "moon-from-env")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MOONLC_BUILD_COMMAND=moon-from-dotenv\n"), 0644))

	s, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "moon-from-env", s.Build.Command)
}

func TestLoad_ReturnsErrorForMalformedYaml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
filePath:
  moonbit:
    folder: "unclosed quote
`)

	s, err := NewLoader(dir).Load()

	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestLoad_ReturnsErrorForInvalidValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
build:
  timeout: -5
`)

	s, err := NewLoader(dir).Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeout)
	assert.Nil(t, s)
}

func TestValidate_ReturnsMultipleErrorsForMultipleInvalidFields(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Build.Command = "  "
	s.Build.Timeout = -1

	err := Validate(s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "build.command is required")
	assert.Contains(t, err.Error(), "build.timeout cannot be negative")
}
