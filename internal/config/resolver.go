package config

import (
	"path/filepath"
	"strings"
)

// WorkspaceLocation describes where stubs of the notation are stored.
// Extension never carries a leading dot and is never empty.
type WorkspaceLocation struct {
	Root      string
	Extension string
}

// Contains reports whether path lies under Root. The match ends on a path
// separator, so a sibling folder sharing Root as a name prefix is outside.
// An empty Root contains every path.
func (l WorkspaceLocation) Contains(path string) bool {
	if l.Root == "" {
		return true
	}
	if !strings.HasPrefix(path, l.Root) {
		return false
	}
	if strings.HasSuffix(l.Root, string(filepath.Separator)) {
		return true
	}
	return len(path) > len(l.Root) && path[len(l.Root)] == filepath.Separator
}

// Resolver derives a WorkspaceLocation from settings and the open workspace.
// It never fails; absent settings fall back to defaults.
type Resolver struct {
	workspaceFolder string
	settings        *Settings
}

// NewResolver creates a resolver for the given workspace folder.
// workspaceFolder may be empty when no workspace is open.
func NewResolver(workspaceFolder string, settings *Settings) *Resolver {
	if settings == nil {
		settings = Default()
	}
	return &Resolver{
		workspaceFolder: workspaceFolder,
		settings:        settings,
	}
}

// ResolveWorkspaceLocation returns the root folder and extension for the notation.
func (r *Resolver) ResolveWorkspaceLocation() WorkspaceLocation {
	return WorkspaceLocation{
		Root:      r.resolveRoot(),
		Extension: r.ResolveFileExtension(),
	}
}

// ResolveFileExtension returns the per-notation extension override or DefaultExtension.
func (r *Resolver) ResolveFileExtension() string {
	if ext := r.settings.extension(Notation); ext != nil {
		if trimmed := strings.TrimLeft(strings.TrimSpace(*ext), "."); trimmed != "" {
			return trimmed
		}
	}
	return DefaultExtension
}

// IsManagedFile reports whether path is a stub of this notation. An empty
// language means the caller does not know the document language.
func (r *Resolver) IsManagedFile(path, language string) bool {
	loc := r.ResolveWorkspaceLocation()
	return loc.Contains(path) &&
		strings.HasSuffix(path, "."+loc.Extension) &&
		(language == "" || language == Notation)
}

func (r *Resolver) resolveRoot() string {
	folder := firstPresent(
		r.settings.folder(Notation),
		r.settings.folder(DefaultNotationKey),
	)
	return filepath.Join(r.workspaceFolder, folder)
}

// firstPresent returns the first non-nil value, or "" if all are absent.
func firstPresent(values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return ""
}
