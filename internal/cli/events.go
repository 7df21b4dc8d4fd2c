package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var eventsCatalogID string

func init() {
	eventsCmd.Flags().StringVar(&eventsCatalogID, "catalog-id", "", "Only list events declared in this catalog")
	rootCmd.AddCommand(eventsCmd)
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List catalog events by normalized name",
	Long: `List the events of every catalog, or of one catalog with --catalog-id.

Names are printed in normalized form, the form every other command and the
registry queries expect.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		catalogs := reg.Catalogs()
		if eventsCatalogID != "" {
			catalogs = []string{eventsCatalogID}
		}

		out := cmd.OutOrStdout()
		for _, id := range catalogs {
			names := reg.EventNames(id)
			if len(names) == 0 {
				continue
			}
			fmt.Fprintf(out, "%s (%d)\n", id, len(names))
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", name)
			}
		}
		return nil
	},
}
