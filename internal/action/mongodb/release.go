package mongodb

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bundlekit/bundle-utils/internal/platform"
)

// DefaultURLTemplate is the download location with its placeholders.
const DefaultURLTemplate = "http://downloads.mongodb.org/@OS/mongodb-@OS-x86_64-@VERSION.@EXT"

// DefaultVersion is the release downloaded when none is configured.
const DefaultVersion = "3.4.4"

// Release holds the values substituted into the URL template.
type Release struct {
	OS      string
	Version string
	Ext     string
}

// ResolveRelease returns the release for os at version. ok is false for
// operating systems with no published build.
func ResolveRelease(os platform.OSType, version *semver.Version) (rel Release, ok bool) {
	switch os {
	case platform.Windows:
		return Release{
			OS:      "win32",
			Version: fmt.Sprintf("2008plus-ssl-v%d.%d-latest-signed", version.Major(), version.Minor()),
			Ext:     "msi",
		}, true
	case platform.MacOS:
		return Release{OS: "osx", Version: version.String(), Ext: "tgz"}, true
	case platform.Linux:
		return Release{OS: "linux", Version: version.String(), Ext: "tgz"}, true
	default:
		return Release{}, false
	}
}

// ParseVersion parses a configured version, tolerating a leading "v".
func ParseVersion(v string) (*semver.Version, error) {
	parsed, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", v, err)
	}
	return parsed, nil
}

// Apply substitutes every placeholder in template.
func (r Release) Apply(template string) string {
	return strings.NewReplacer(
		"@OS", r.OS,
		"@VERSION", r.Version,
		"@EXT", r.Ext,
	).Replace(template)
}

// Unresolved reports whether s still carries a placeholder.
func Unresolved(s string) bool {
	return strings.Contains(s, "@")
}

// OutputName returns the local filename for the archive.
func OutputName(os platform.OSType) string {
	if os == platform.Windows {
		return "mongodb.msi"
	}
	return "mongodb.tgz"
}
