package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/agentx-labs/auditcat/internal/branding"
	"github.com/agentx-labs/auditcat/internal/catalog"
	"github.com/agentx-labs/auditcat/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	catalogCmd.AddCommand(catalogUpdateCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the catalog checkout",
	Long: `Manage the git checkout the catalog is read from when neither --catalog nor
the catalog_path setting names a file.

The checkout lives at ~/.auditcat/catalog-repo/ and is cloned from the
catalog_repo setting.`,
}

var catalogUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Clone or update the catalog checkout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repoRoot := config.CatalogRepoRoot()
		fmt.Fprintf(cmd.OutOrStdout(), "Updating catalog at %s...\n", repoRoot)

		if err := catalog.Update(repoRoot, config.Get(config.KeyCatalogRepo)); err != nil {
			return fmt.Errorf("updating catalog: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Catalog updated successfully.")
		return nil
	},
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog location and freshness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if p := catalogPath; p != "" {
			fmt.Fprintf(out, "Catalog file: %s (--catalog)\n", p)
			return nil
		}
		if p := config.Get(config.KeyCatalogPath); p != "" {
			fmt.Fprintf(out, "Catalog file: %s (%s)\n", p, config.KeyCatalogPath)
			return nil
		}

		repoRoot := config.CatalogRepoRoot()
		fmt.Fprintf(out, "Catalog path: %s\n", repoRoot)
		fmt.Fprintf(out, "Catalog file: %s\n", config.Get(config.KeyCatalogFile))
		fmt.Fprintf(out, "Repo URL:     %s\n", config.Get(config.KeyCatalogRepo))

		if _, err := os.Stat(repoRoot); err != nil {
			fmt.Fprintln(out, "Status:       not installed")
			fmt.Fprintf(out, "\nRun '%s catalog update' to install.\n", branding.CLIName())
			return nil
		}

		lastUpdated := catalog.ReadFreshnessMarker(repoRoot)
		if lastUpdated.IsZero() {
			fmt.Fprintln(out, "Last updated: unknown")
		} else {
			age := time.Since(lastUpdated).Truncate(time.Minute)
			fmt.Fprintf(out, "Last updated: %s (%s ago)\n", lastUpdated.Format(time.RFC3339), age)
		}

		if catalog.IsStale(repoRoot, catalog.DefaultMaxAge) {
			fmt.Fprintf(out, "Status:       stale (run '%s catalog update')\n", branding.CLIName())
		} else {
			fmt.Fprintln(out, "Status:       up to date")
		}
		return nil
	},
}
