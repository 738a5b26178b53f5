package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/moonbit-leetcode/internal/build"
	"github.com/mvp-joe/moonbit-leetcode/internal/config"
	"github.com/mvp-joe/moonbit-leetcode/internal/git"
	"github.com/mvp-joe/moonbit-leetcode/internal/problem"
	"github.com/mvp-joe/moonbit-leetcode/internal/stub"
	"github.com/spf13/afero"
)

// app bundles the collaborators shared by commands.
type app struct {
	fs       afero.Fs
	settings *config.Settings
	resolver *config.Resolver
	runner   build.Runner
	lookup   problem.Lookup
}

// newApp loads settings for the workspace and wires the real collaborators.
// Without an explicit workspace, the git worktree containing the current
// directory is used, or the current directory itself outside a repository.
func newApp(workspace string, gitOps git.Operations) (*app, error) {
	if workspace == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		workspace = gitOps.GetWorktreeRoot(wd)
	}

	abs, err := filepath.Abs(workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}

	settings, err := config.NewLoader(abs).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	fs := afero.NewOsFs()
	return &app{
		fs:       fs,
		settings: settings,
		resolver: config.NewResolver(abs, settings),
		runner:   build.NewCommandRunner(),
		lookup:   problem.NewFileLookup(fs),
	}, nil
}

func (a *app) stubWriter() *stub.Writer {
	return stub.NewWriter(a.fs, a.resolver)
}

func (a *app) orchestrator() *build.Orchestrator {
	return build.NewOrchestrator(a.fs, a.resolver, a.runner, a.lookup, build.Options{
		Command: a.settings.Build.Command,
		Timeout: a.settings.BuildTimeout(),
	})
}

// absPath makes a user-supplied path absolute so it compares against the resolved root.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
