package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyBuildCommand indicates a blank compiler executable
	ErrEmptyBuildCommand = errors.New("empty build command")

	// ErrInvalidTimeout indicates a negative build timeout
	ErrInvalidTimeout = errors.New("invalid build timeout")
)

// Validate checks that the settings are usable.
// Folder and extension values are never rejected; they only steer resolution.
func Validate(s *Settings) error {
	var errs []error

	if strings.TrimSpace(s.Build.Command) == "" {
		errs = append(errs, fmt.Errorf("%w: build.command is required", ErrEmptyBuildCommand))
	}

	if s.Build.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%w: build.timeout cannot be negative, got %d", ErrInvalidTimeout, s.Build.Timeout))
	}

	return joinErrors(errs)
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
