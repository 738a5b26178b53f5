package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mvp-joe/moonbit-leetcode/internal/git"
	"github.com/spf13/cobra"
)

var buildQuietFlag bool

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <stub-path>",
	Short: "Compile a MoonBit stub to JavaScript",
	Long: `Build runs "moon build --release --target js" for the workspace and prints
the path of the JavaScript file compiled from the given stub.

The compiled file gets an "@lc app=leetcode.cn id=<id> lang=javascript"
trailer so it can be submitted as a JavaScript solution. Compiler errors are
printed exactly as moon reports them.

Examples:
  moonlc build moonbit/1/two_sum.mbt

  # Only print the output path
  moonlc build moonbit/1/two_sum.mbt --quiet
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(workspaceDir, git.NewOperations())
		if err != nil {
			return err
		}
		return runBuild(cmd.Context(), a, args[0], buildQuietFlag || verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&buildQuietFlag, "quiet", "q", false, "Suppress progress output")
}

func runBuild(ctx context.Context, a *app, stubPath string, quiet bool, out, errOut io.Writer) error {
	path, err := absPath(stubPath)
	if err != nil {
		return err
	}

	spinner := startSpinner(errOut, "Compiling with "+a.settings.Build.Command, quiet)
	outcome, err := a.orchestrator().Build(ctx, path)
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, outcome.OutputPath)
	return nil
}
