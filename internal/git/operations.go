// Package git locates the workspace folder of a solution checkout.
package git

import (
	"os/exec"
	"strings"
)

// Operations defines the git queries moonlc needs.
// This allows mocking git commands in tests.
type Operations interface {
	// GetWorktreeRoot returns the git worktree root path.
	// Falls back to path if it is not inside a git repository.
	GetWorktreeRoot(path string) string
}

// gitOps is the real implementation using exec.Command.
type gitOps struct{}

// NewOperations returns the default git operations implementation.
func NewOperations() Operations {
	return &gitOps{}
}

func (g *gitOps) GetWorktreeRoot(path string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = path
	output, err := cmd.Output()
	if err != nil {
		return path
	}
	if root := strings.TrimSpace(string(output)); root != "" {
		return root
	}
	return path
}
