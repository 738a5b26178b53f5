// Package config resolves where MoonBit solution files live and how they are
// named.
//
// Settings are layered (highest to lowest priority):
//  1. Environment variables (MOONLC_*, also read from a workspace .env file)
//  2. Workspace config file (.moonlc/config.yml)
//  3. Built-in defaults
//
// Folder lookups fall back from the per-notation key to the generic default
// key and finally to an empty string, so a missing configuration is never an
// error.
package config

import "time"

const (
	// Notation is the canonical language tag of the stub notation.
	Notation = "moonbit"

	// DefaultExtension is used when no per-notation extension is configured.
	DefaultExtension = "mbt"

	// DefaultNotationKey is the generic fallback key under filePath.
	DefaultNotationKey = "default"

	// DefaultBuildCommand is the external compiler executable.
	DefaultBuildCommand = "moon"

	// DefaultBuildTimeout bounds a single compiler invocation, in seconds.
	DefaultBuildTimeout = 300
)

// Settings mirrors the editor-style configuration keys understood by moonlc.
type Settings struct {
	FilePath map[string]FolderSettings `yaml:"filePath" mapstructure:"filepath"` // keyed by notation or "default"
	LangExt  map[string]string         `yaml:"langExt" mapstructure:"langext"`   // notation -> file extension
	Build    BuildSettings             `yaml:"build" mapstructure:"build"`
}

// FolderSettings holds a single filePath.<notation> entry.
// Folder is nil when the key is absent, which is distinct from an empty value.
type FolderSettings struct {
	Folder *string `yaml:"folder" mapstructure:"folder"`
}

// BuildSettings configures the external compiler invocation.
type BuildSettings struct {
	Command string `yaml:"command" mapstructure:"command"`
	Timeout int    `yaml:"timeout" mapstructure:"timeout"` // seconds, 0 disables the timeout
}

// Default returns settings with no folder or extension overrides.
func Default() *Settings {
	return &Settings{
		FilePath: map[string]FolderSettings{},
		LangExt:  map[string]string{},
		Build: BuildSettings{
			Command: DefaultBuildCommand,
			Timeout: DefaultBuildTimeout,
		},
	}
}

// BuildTimeout returns the configured timeout as a duration.
func (s *Settings) BuildTimeout() time.Duration {
	return time.Duration(s.Build.Timeout) * time.Second
}

// folder returns the configured folder for key, or nil when absent.
func (s *Settings) folder(key string) *string {
	if s == nil || s.FilePath == nil {
		return nil
	}
	entry, ok := s.FilePath[key]
	if !ok {
		return nil
	}
	return entry.Folder
}

// extension returns the configured extension for a notation, or nil when absent.
func (s *Settings) extension(notation string) *string {
	if s == nil || s.LangExt == nil {
		return nil
	}
	ext, ok := s.LangExt[notation]
	if !ok {
		return nil
	}
	return &ext
}
