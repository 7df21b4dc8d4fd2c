package cli

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/auditcat/internal/catalog"
	"github.com/spf13/cobra"
)

var attributeCatalogID string

func init() {
	attributeCmd.Flags().StringVar(&attributeCatalogID, "catalog-id", "", "Catalog to search before the default catalog")
	rootCmd.AddCommand(attributeCmd)
}

var attributeCmd = &cobra.Command{
	Use:   "attribute <name>",
	Short: "Show how an attribute name resolves",
	Long: `Resolve an attribute name. Without --catalog-id only the default catalog is
searched; with it, the named catalog's definition wins over the default one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		var (
			attr catalog.Attribute
			ok   bool
		)
		if attributeCatalogID == "" {
			attr, ok = reg.Attribute(args[0])
		} else {
			attr, ok = reg.CatalogAttribute(args[0], attributeCatalogID)
		}
		if !ok {
			return fmt.Errorf("attribute %q not found", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name:            %s\n", attr.Name)
		fmt.Fprintf(out, "Catalog:         %s\n", attr.IndexCatalog())
		if attr.DisplayName != "" {
			fmt.Fprintf(out, "Display name:    %s\n", attr.DisplayName)
		}
		if attr.Description != "" {
			fmt.Fprintf(out, "Description:     %s\n", attr.Description)
		}
		if attr.DataType != "" {
			fmt.Fprintf(out, "Data type:       %s\n", attr.DataType)
		}
		fmt.Fprintf(out, "Request context: %t\n", attr.RequestContext)
		fmt.Fprintf(out, "Required:        %t\n", attr.Required)
		if len(attr.Examples) > 0 {
			fmt.Fprintf(out, "Examples:        %s\n", strings.Join(attr.Examples, ", "))
		}
		return nil
	},
}
