package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/bundlekit/bundle-utils/internal/branding"
)

// OSType is the category of the host operating system.
type OSType int

const (
	Other OSType = iota
	Windows
	MacOS
	Linux
)

func (t OSType) String() string {
	switch t {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// Classify maps an OS name to its category. Markers are checked in order and
// the first match wins; names matching nothing are Other.
func Classify(name string) OSType {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "win"):
		return Windows
	case strings.Contains(name, "mac"):
		return MacOS
	case strings.Contains(name, "nux"), strings.Contains(name, "nix"), strings.Contains(name, "aix"):
		return Linux
	default:
		return Other
	}
}

// HostName returns the name of the running operating system. The
// BUNDLE_UTILS_OS_NAME env var takes precedence over runtime.GOOS.
func HostName() string {
	if name := os.Getenv(branding.EnvVar("OS_NAME")); name != "" {
		return name
	}
	return goosName(runtime.GOOS)
}

// Detect classifies the host operating system.
func Detect() OSType {
	return Classify(HostName())
}

func goosName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "Mac OS X"
	case "linux":
		return "Linux"
	case "aix":
		return "AIX"
	default:
		return goos
	}
}
