// Package manifest writes the descriptor files the MoonBit toolchain needs to
// build a workspace of stubs.
//
// The module descriptor (moon.mod.json) is user-editable: it is created once
// per workspace and never touched again. The package descriptor
// (moon.pkg.json) is owned by moonlc and rewritten with every stub so its
// export list always names the latest callable.
package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// ModuleFileName is the module descriptor at the workspace root.
	ModuleFileName = "moon.mod.json"

	// PackageFileName is the package descriptor next to each stub.
	PackageFileName = "moon.pkg.json"

	// ModuleName is the fixed module name written into the module descriptor.
	ModuleName = "moonbit-leetcode"
)

// Module is the moon.mod.json payload.
type Module struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Package is the moon.pkg.json payload.
type Package struct {
	IsMain bool        `json:"is-main"`
	Link   PackageLink `json:"link"`
}

// PackageLink holds per-backend link options.
type PackageLink struct {
	JS JSLink `json:"js"`
}

// JSLink configures the JavaScript backend output.
type JSLink struct {
	Exports []string `json:"exports"`
	Format  string   `json:"format"`
}

// ModulePayload returns the module descriptor bytes.
func ModulePayload() ([]byte, error) {
	return json.Marshal(Module{Name: ModuleName, Source: "."})
}

// PackagePayload returns the package descriptor bytes exporting callableName.
func PackagePayload(callableName string) ([]byte, error) {
	return json.Marshal(Package{
		IsMain: false,
		Link: PackageLink{
			JS: JSLink{
				Exports: []string{callableName},
				Format:  "iife",
			},
		},
	})
}

// Writer writes descriptor files through an afero file system.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a manifest writer backed by fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// EnsureModuleManifest creates root/moon.mod.json if it does not exist.
// Existing content is never read or replaced.
func (w *Writer) EnsureModuleManifest(root string) error {
	path := filepath.Join(root, ModuleFileName)

	exists, err := afero.Exists(w.fs, path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return nil
	}

	payload, err := ModulePayload()
	if err != nil {
		return fmt.Errorf("failed to encode module manifest: %w", err)
	}

	if root != "" {
		if err := w.fs.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", root, err)
		}
	}

	if err := afero.WriteFile(w.fs, path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write module manifest: %w", err)
	}
	return nil
}

// WritePackageManifest (over)writes moon.pkg.json in the directory of stubPath.
func (w *Writer) WritePackageManifest(stubPath, callableName string) error {
	payload, err := PackagePayload(callableName)
	if err != nil {
		return fmt.Errorf("failed to encode package manifest: %w", err)
	}

	path := filepath.Join(filepath.Dir(stubPath), PackageFileName)
	if err := afero.WriteFile(w.fs, path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write package manifest: %w", err)
	}
	return nil
}
