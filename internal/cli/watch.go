package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mvp-joe/moonbit-leetcode/internal/ctxlog"
	"github.com/mvp-joe/moonbit-leetcode/internal/git"
	"github.com/mvp-joe/moonbit-leetcode/internal/watcher"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild stubs whenever they are saved",
	Long: `Watch monitors the stub folder and compiles each saved stub to
JavaScript. Saves are debounced; builds run one at a time. Build failures
are logged and watching continues. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(workspaceDir, git.NewOperations())
		if err != nil {
			return err
		}
		return runWatch(cmd.Context(), a, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(ctx context.Context, a *app, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	loc := a.resolver.ResolveWorkspaceLocation()

	isStub := func(path string) bool {
		return a.resolver.IsManagedFile(path, "")
	}

	w, err := watcher.NewFileWatcher(loc.Root, isStub, watcher.DefaultIgnore, logger)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", loc.Root, err)
	}
	defer w.Stop()

	orchestrator := a.orchestrator()
	err = w.Start(ctx, func(files []string) {
		for _, file := range files {
			outcome, err := orchestrator.Build(ctx, file)
			if err != nil {
				logger.Error("build failed", "stub", file, "error", err)
				continue
			}
			fmt.Fprintf(out, "✓ %s -> %s (%s)\n", file, outcome.OutputPath, outcome.Took.Round(time.Millisecond))
		}
	})
	if err != nil {
		return err
	}

	logger.Info("watching for changes", "root", loc.Root, "extension", loc.Extension)
	<-ctx.Done()
	return nil
}
