package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(contextCmd)
}

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "List request-context attributes",
	Long: `List the request-context attributes of all catalogs. When two catalogs define
the same name, the definition that appears later in the catalog document wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		attrs := reg.RequestContextAttributes()
		out := cmd.OutOrStdout()
		if len(attrs) == 0 {
			fmt.Fprintln(out, "No request-context attributes.")
			return nil
		}
		for _, name := range slices.Sorted(maps.Keys(attrs)) {
			attr := attrs[name]
			required := ""
			if attr.Required {
				required = " (required)"
			}
			fmt.Fprintf(out, "%-24s catalog=%s%s\n", name, attr.IndexCatalog(), required)
		}
		return nil
	},
}
