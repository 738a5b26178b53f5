package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mvp-joe/moonbit-leetcode/internal/git"
	"github.com/spf13/cobra"
)

var generateTemplateFlag string

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <stub-path>",
	Short: "Generate a MoonBit stub from a JavaScript template",
	Long: `Generate translates a LeetCode JavaScript template into a MoonBit stub.

The template is kept as comments above a generated function whose name and
parameters come from the "var name = function(...)" line. Parameter and
return types are not inferred.

moon.mod.json is created at the workspace root if missing, and moon.pkg.json
is (re)written next to the stub so the function is exported to JavaScript.

Examples:
  # Template from a file
  moonlc generate moonbit/1/two_sum.mbt --template two_sum.js

  # Template from stdin
  pbpaste | moonlc generate moonbit/1/two_sum.mbt
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(workspaceDir, git.NewOperations())
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if generateTemplateFlag != "-" {
			f, err := os.Open(generateTemplateFlag)
			if err != nil {
				return fmt.Errorf("failed to open template: %w", err)
			}
			defer f.Close()
			in = f
		}

		return runGenerate(cmd.Context(), a, in, args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateTemplateFlag, "template", "t", "-", "template file, - for stdin")
}

func runGenerate(ctx context.Context, a *app, template io.Reader, stubPath string, out io.Writer) error {
	text, err := io.ReadAll(template)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	path, err := absPath(stubPath)
	if err != nil {
		return err
	}

	sig, err := a.stubWriter().Write(ctx, string(text), path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Wrote %s (pub fn %s)\n", path, sig.Name)
	return nil
}
