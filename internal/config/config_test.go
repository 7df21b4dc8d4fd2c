package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := Get(KeyLogLevel); got != "warn" {
		t.Errorf("log_level = %q, want %q", got, "warn")
	}
	if got := Get(KeyCatalogFile); got != "catalog.json" {
		t.Errorf("catalog_file = %q, want %q", got, "catalog.json")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("AUDITCAT_CATALOG_PATH", "/tmp/catalog.json")
	Load()

	if got := Get(KeyCatalogPath); got != "/tmp/catalog.json" {
		t.Errorf("catalog_path = %q, want %q", got, "/tmp/catalog.json")
	}
}

func TestSetWritesConfigFile(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyMinCatalogVersion, ">= 1.0"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	path := filepath.Join(home, ".auditcat", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyMinCatalogVersion); got != ">= 1.0" {
		t.Errorf("min_catalog_version = %q, want %q", got, ">= 1.0")
	}
}

func TestCatalogRepoRootEnv(t *testing.T) {
	setupHome(t)
	t.Setenv("AUDITCAT_CATALOG_REPO_DIR", "/srv/catalog")

	if got := CatalogRepoRoot(); got != "/srv/catalog" {
		t.Errorf("CatalogRepoRoot() = %q, want %q", got, "/srv/catalog")
	}
}
