package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentx-labs/auditcat/internal/catalog"
	"github.com/agentx-labs/auditcat/internal/registry"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	eventCatalogID string
	eventOutput    string
)

func init() {
	eventCmd.Flags().StringVar(&eventCatalogID, "catalog-id", "", "Catalog to search before the default catalog")
	eventCmd.Flags().StringVarP(&eventOutput, "output", "o", "text", "Output format: text, yaml, json")
	rootCmd.AddCommand(eventCmd)
}

// eventView is the printable form of registry.EventInfo.
type eventView struct {
	Name                      string          `yaml:"name" json:"name"`
	Key                       string          `yaml:"key" json:"key"`
	Catalog                   string          `yaml:"catalog" json:"catalog"`
	AttributeNames            []string        `yaml:"attributeNames" json:"attributeNames"`
	RequiredContextAttributes []string        `yaml:"requiredContextAttributes" json:"requiredContextAttributes"`
	Attributes                []attributeView `yaml:"attributes" json:"attributes"`
}

type attributeView struct {
	Name           string `yaml:"name" json:"name"`
	Catalog        string `yaml:"catalog" json:"catalog"`
	DataType       string `yaml:"dataType,omitempty" json:"dataType,omitempty"`
	RequestContext bool   `yaml:"requestContext" json:"requestContext"`
	Required       bool   `yaml:"required" json:"required"`
}

func newAttributeView(attr catalog.Attribute) attributeView {
	return attributeView{
		Name:           attr.Name,
		Catalog:        attr.IndexCatalog(),
		DataType:       attr.DataType,
		RequestContext: attr.RequestContext,
		Required:       attr.Required,
	}
}

func newEventView(info registry.EventInfo) eventView {
	v := eventView{
		Name:                      info.Event.Name,
		Key:                       registry.FieldName(info.Event.Name),
		Catalog:                   info.Event.IndexCatalog(),
		AttributeNames:            info.AttributeNames,
		RequiredContextAttributes: info.RequiredContextAttributes,
	}
	for _, ref := range info.Event.Attributes {
		v.Attributes = append(v.Attributes, newAttributeView(info.Attributes[ref.Name]))
	}
	return v
}

var eventCmd = &cobra.Command{
	Use:   "event <name>",
	Short: "Show an event and its resolved attributes",
	Long: `Show an event definition: its sanitized attribute names, the request-context
fields it requires, and the attribute definitions its references resolved to.

The name may be given in display form ("Transfer Funds") or normalized form
("transferFunds").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		key := registry.FieldName(args[0])
		info, ok := reg.Info(key, eventCatalogID)
		if !ok {
			return fmt.Errorf("event %q not found", args[0])
		}
		view := newEventView(info)

		out := cmd.OutOrStdout()
		switch eventOutput {
		case "yaml":
			data, err := yaml.Marshal(view)
			if err != nil {
				return fmt.Errorf("marshaling event: %w", err)
			}
			_, err = out.Write(data)
			return err
		case "json":
			data, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling event: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		case "text", "":
			fmt.Fprintf(out, "Event:            %s (%s)\n", view.Name, view.Key)
			fmt.Fprintf(out, "Catalog:          %s\n", view.Catalog)
			fmt.Fprintf(out, "Attributes:       %s\n", joinOrDash(view.AttributeNames))
			fmt.Fprintf(out, "Required context: %s\n", joinOrDash(view.RequiredContextAttributes))
			for _, a := range view.Attributes {
				fmt.Fprintf(out, "  %-24s catalog=%s requestContext=%t required=%t\n", a.Name, a.Catalog, a.RequestContext, a.Required)
			}
			return nil
		default:
			return fmt.Errorf("unknown output format %q", eventOutput)
		}
	},
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
