package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mvp-joe/moonbit-leetcode/internal/git"
	"github.com/spf13/cobra"
)

var checkLanguageFlag string

// errNotManaged makes the process exit 1 without an error message.
var errNotManaged = errors.New("not a MoonBit stub")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Check whether a file is a MoonBit stub",
	Long: `Check exits 0 when the path lies under the stub folder, has the stub
extension and (if --language is given) the language is "moonbit".
It exits 1 otherwise.

Examples:
  moonlc check moonbit/1/two_sum.mbt
  moonlc check src/two_sum.js --language javascript
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(workspaceDir, git.NewOperations())
		if err != nil {
			return err
		}
		return runCheck(a, args[0], checkLanguageFlag, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkLanguageFlag, "language", "l", "", "language tag of the document")
}

func runCheck(a *app, path, language string, out io.Writer) error {
	abs, err := absPath(path)
	if err != nil {
		return err
	}

	if !a.resolver.IsManagedFile(abs, language) {
		fmt.Fprintf(out, "%s: not managed\n", abs)
		return errNotManaged
	}

	fmt.Fprintf(out, "%s: managed\n", abs)
	return nil
}
