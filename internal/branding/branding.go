// Package branding provides compile-time identity values for the CLI.
//
// Values come from branding.yaml, baked into the binary with //go:embed.
// Hard defaults cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	CatalogRepoURL string `yaml:"catalog_repo_url"`
	CatalogFile    string `yaml:"catalog_file"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "auditcat",
			DisplayName:    "AuditCat",
			Description:    "Audit event catalog registry and record checker",
			HomeDir:        ".auditcat",
			EnvPrefix:      "AUDITCAT",
			GoModule:       "github.com/agentx-labs/auditcat",
			CatalogRepoURL: "https://github.com/agentx-labs/audit-catalog.git",
			CatalogFile:    "catalog.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "auditcat").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".auditcat").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AUDITCAT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// CatalogRepoURL returns the default git URL for catalog cloning.
func CatalogRepoURL() string { load(); return defaults.CatalogRepoURL }

// CatalogFile returns the catalog document name inside a catalog checkout.
func CatalogFile() string { load(); return defaults.CatalogFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "AUDITCAT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
