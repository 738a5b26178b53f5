package build

import (
	"context"
	"os/exec"
)

// Runner executes the external compiler and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args []string) ([]byte, error)
}

// CommandRunner runs commands with os/exec. It never uses a shell.
type CommandRunner struct{}

// NewCommandRunner returns the default runner.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// Run implements Runner. The returned error is an *exec.ExitError for
// non-zero exits.
func (r *CommandRunner) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
