// Package problem maps solution files to LeetCode problem identifiers.
package problem

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// ErrUnknownProblem indicates a file that is not associated with any problem.
var ErrUnknownProblem = errors.New("unknown problem")

// headerPattern matches the "@lc app=... id=<id> lang=..." header line.
var headerPattern = regexp.MustCompile(`@lc.+id=(.+?) `)

// Lookup resolves the problem identifier of a solution file.
type Lookup interface {
	LookupIdentifier(path string) (string, error)
}

// FileLookup reads the identifier from the file header, falling back to the
// file name prefix ("1.two-sum.mbt" -> "1").
type FileLookup struct {
	fs afero.Fs
}

// NewFileLookup creates a lookup reading files from fs.
func NewFileLookup(fs afero.Fs) *FileLookup {
	return &FileLookup{fs: fs}
}

// LookupIdentifier implements Lookup.
func (l *FileLookup) LookupIdentifier(path string) (string, error) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnknownProblem, path, err)
	}

	if m := headerPattern.FindSubmatch(content); len(m) == 2 {
		if id := strings.TrimSpace(string(m[1])); id != "" {
			return id, nil
		}
	}

	if id, _, _ := strings.Cut(filepath.Base(path), "."); id != "" {
		return id, nil
	}

	return "", fmt.Errorf("%w: no identifier in %s", ErrUnknownProblem, path)
}
