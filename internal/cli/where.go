package cli

import (
	"fmt"
	"io"

	"github.com/mvp-joe/moonbit-leetcode/internal/config"
	"github.com/mvp-joe/moonbit-leetcode/internal/git"
	"github.com/spf13/cobra"
)

// whereCmd represents the where command
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where MoonBit stubs are stored",
	Long: `Where prints the resolved stub folder and file extension.

The folder is filePath.moonbit.folder, falling back to
filePath.default.folder, joined to the workspace. The extension is
langExt.moonbit, falling back to "mbt".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(workspaceDir, git.NewOperations())
		if err != nil {
			return err
		}
		printLocation(cmd.OutOrStdout(), a.resolver.ResolveWorkspaceLocation())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whereCmd)
}

func printLocation(out io.Writer, loc config.WorkspaceLocation) {
	fmt.Fprintf(out, "root:      %s\n", loc.Root)
	fmt.Fprintf(out, "extension: %s\n", loc.Extension)
}
