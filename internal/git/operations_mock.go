package git

// MockGitOps is a mock implementation of Operations for testing.
type MockGitOps struct {
	WorktreeRoot string
}

// NewMockGitOps creates a mock reporting root as the worktree root.
// An empty root makes GetWorktreeRoot behave like a non-repository.
func NewMockGitOps(root string) *MockGitOps {
	return &MockGitOps{WorktreeRoot: root}
}

func (m *MockGitOps) GetWorktreeRoot(path string) string {
	if m.WorktreeRoot == "" {
		return path
	}
	return m.WorktreeRoot
}
