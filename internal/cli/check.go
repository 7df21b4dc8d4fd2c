package cli

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/auditcat/internal/audit"
	"github.com/spf13/cobra"
)

var (
	checkCatalogID string
	checkContext   string
	checkEmit      bool
)

func init() {
	checkCmd.Flags().StringVar(&checkCatalogID, "catalog-id", "", "Catalog to search before the default catalog")
	checkCmd.Flags().StringVar(&checkContext, "context", "", "Request-context values as key=value,key=value")
	checkCmd.Flags().BoolVar(&checkEmit, "emit", false, "Log the record to stderr when it is valid")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <event> [field=value...]",
	Short: "Validate an audit record against its event definition",
	Long: `Build an audit record from field=value arguments and check it against the
catalog: required attributes must be set, required request-context values
must be supplied with --context, and every field must be declared by the event.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())
		reg, err := loadRegistry(logger)
		if err != nil {
			return err
		}

		rec, err := audit.NewRecord(reg, args[0], checkCatalogID)
		if err != nil {
			return err
		}

		for _, arg := range args[1:] {
			name, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("field %q is not in name=value form", arg)
			}
			rec.Set(name, value)
		}

		ctx, err := parsePairs(checkContext)
		if err != nil {
			return fmt.Errorf("parsing --context: %w", err)
		}
		rec.SetContext(ctx)

		if err := rec.Validate(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), rec.String())
		if checkEmit {
			rec.Log(cmd.Context(), newEmitLogger(cmd.ErrOrStderr()))
		}
		return nil
	},
}

// parsePairs splits "a=1,b=2" into a map. Empty input yields an empty map.
func parsePairs(s string) (map[string]string, error) {
	pairs := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return pairs, nil
	}
	for _, part := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(part, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%q is not in key=value form", part)
		}
		pairs[k] = strings.TrimSpace(v)
	}
	return pairs, nil
}
