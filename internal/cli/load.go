package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/agentx-labs/auditcat/internal/catalog"
	"github.com/agentx-labs/auditcat/internal/config"
	"github.com/agentx-labs/auditcat/internal/registry"
)

// catalogSource picks where the catalog comes from: the --catalog flag, then
// the catalog_path setting, then the managed git checkout.
func catalogSource() catalog.Source {
	if catalogPath != "" {
		return catalog.FileSource{Path: catalogPath}
	}
	if p := config.Get(config.KeyCatalogPath); p != "" {
		return catalog.FileSource{Path: p}
	}
	return catalog.RepoSource{Dir: config.CatalogRepoRoot(), File: config.Get(config.KeyCatalogFile)}
}

// newLogger builds the diagnostic logger. The --log-level flag wins over the
// log_level setting; unparsable levels fall back to warn.
func newLogger(w io.Writer) *slog.Logger {
	level := logLevel
	if level == "" {
		level = config.Get(config.KeyLogLevel)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// newEmitLogger builds the logger audit records are emitted through. It is
// fixed at info so log_level only governs diagnostics.
func newEmitLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// loadRegistry builds the registry and enforces min_catalog_version.
func loadRegistry(logger *slog.Logger) (*registry.Registry, error) {
	reg, err := registry.New(catalogSource(), registry.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if err := catalog.CheckVersion(reg.Version(), config.Get(config.KeyMinCatalogVersion)); err != nil {
		return nil, fmt.Errorf("checking catalog version: %w", err)
	}
	return reg, nil
}
