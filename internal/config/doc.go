// Package config manages user-level settings stored at ~/.auditcat/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the catalog location, the catalog version constraint, and the log level.
// Every key can also be supplied through an AUDITCAT_-prefixed env var.
package config
