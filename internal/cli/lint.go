package cli

import (
	"fmt"

	"github.com/agentx-labs/auditcat/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Check a catalog document against the catalog schema",
	Long: `Check a catalog document against the catalog JSON schema and report every
violation. Loading a catalog never runs this check; use it before publishing
a catalog change.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := catalog.FileSource{Path: args[0]}.ReadCatalog()
		if err != nil {
			return err
		}

		result, err := catalog.Lint(text)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s: ok\n", args[0])
			return nil
		}
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "%s: %s\n", args[0], issue)
		}
		return fmt.Errorf("%s: %d schema issue(s)", args[0], len(result.Issues))
	},
}
