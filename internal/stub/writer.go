// Package stub persists translated MoonBit stubs together with the
// descriptor files the toolchain needs to build them.
package stub

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mvp-joe/moonbit-leetcode/internal/config"
	"github.com/mvp-joe/moonbit-leetcode/internal/ctxlog"
	"github.com/mvp-joe/moonbit-leetcode/internal/manifest"
	"github.com/mvp-joe/moonbit-leetcode/internal/translate"
	"github.com/spf13/afero"
)

// Locator resolves the stub workspace.
type Locator interface {
	ResolveWorkspaceLocation() config.WorkspaceLocation
}

// Writer translates templates and writes the resulting stub files.
type Writer struct {
	fs        afero.Fs
	locator   Locator
	manifests *manifest.Writer
}

// NewWriter creates a stub writer.
func NewWriter(fs afero.Fs, locator Locator) *Writer {
	return &Writer{
		fs:        fs,
		locator:   locator,
		manifests: manifest.NewWriter(fs),
	}
}

// Write translates template and writes the stub to stubPath. The module
// descriptor is ensured first and the package descriptor is written last;
// the first failure aborts the operation.
func (w *Writer) Write(ctx context.Context, template, stubPath string) (translate.Signature, error) {
	logger := ctxlog.FromContext(ctx)

	stub := translate.TranslateText(template)
	loc := w.locator.ResolveWorkspaceLocation()

	logger.Debug("writing stub",
		"path", stubPath,
		"root", loc.Root,
		"function", stub.Signature.Name)

	if err := w.manifests.EnsureModuleManifest(loc.Root); err != nil {
		return translate.Signature{}, err
	}

	if err := w.fs.MkdirAll(filepath.Dir(stubPath), 0755); err != nil {
		return translate.Signature{}, fmt.Errorf("failed to create stub directory: %w", err)
	}
	if err := afero.WriteFile(w.fs, stubPath, []byte(stub.String()), 0644); err != nil {
		return translate.Signature{}, fmt.Errorf("failed to write stub: %w", err)
	}

	if err := w.manifests.WritePackageManifest(stubPath, stub.Signature.Name); err != nil {
		return translate.Signature{}, err
	}

	return stub.Signature, nil
}
