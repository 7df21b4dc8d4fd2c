package cli

import (
	"fmt"
	"os"

	"github.com/agentx-labs/auditcat/internal/branding"
	"github.com/agentx-labs/auditcat/internal/catalog"
	"github.com/agentx-labs/auditcat/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	catalogPath string
	logLevel    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file to load (overrides the catalog_path setting)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` loads an audit event catalog and answers questions about it:
which events exist, which attributes and request-context fields they carry,
and whether a given record satisfies its event definition.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Only the managed checkout can go stale.
		if staleCheckExempt(cmd) {
			return
		}
		if catalogPath != "" || config.Get(config.KeyCatalogPath) != "" {
			return
		}
		repoRoot := config.CatalogRepoRoot()
		if _, err := os.Stat(repoRoot); err == nil && catalog.IsStale(repoRoot, catalog.DefaultMaxAge) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Catalog is more than 7 days old. Run '%s catalog update'.\n", branding.CLIName())
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// staleCheckExempt reports whether cmd sits under a command that manages
// the checkout or settings itself.
func staleCheckExempt(cmd *cobra.Command) bool {
	for c := cmd; c != nil && c.HasParent(); c = c.Parent() {
		switch c.Name() {
		case "catalog", "config", "version":
			return true
		}
	}
	return false
}
