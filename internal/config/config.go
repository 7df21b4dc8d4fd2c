package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/auditcat/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// catalogRepoDir is the managed catalog checkout under Dir().
	catalogRepoDir = "catalog-repo"
)

// Recognized configuration keys.
const (
	KeyCatalogPath       = "catalog_path"
	KeyCatalogRepo       = "catalog_repo"
	KeyCatalogFile       = "catalog_file"
	KeyLogLevel          = "log_level"
	KeyMinCatalogVersion = "min_catalog_version"
)

// Dir returns the path to the config directory (~/.auditcat/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.auditcat/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// CatalogRepoRoot returns the directory of the managed catalog checkout.
// AUDITCAT_CATALOG_REPO_DIR overrides the default ~/.auditcat/catalog-repo.
func CatalogRepoRoot() string {
	if v := os.Getenv(branding.EnvVar("CATALOG_REPO_DIR")); v != "" {
		return v
	}
	return filepath.Join(Dir(), catalogRepoDir)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyCatalogRepo, branding.CatalogRepoURL())
	viper.SetDefault(KeyCatalogFile, branding.CatalogFile())
	viper.SetDefault(KeyLogLevel, "warn")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
