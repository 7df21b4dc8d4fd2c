package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersion reports whether a catalog version satisfies a semver
// constraint such as ">= 1.2, < 2". An empty constraint always passes; a
// non-empty constraint fails for a catalog without a version.
func CheckVersion(version, constraint string) error {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}

	if version == "" {
		return fmt.Errorf("catalog declares no version, %q required", constraint)
	}
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing catalog version %q: %w", version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("catalog version %s does not satisfy %q", version, constraint)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
