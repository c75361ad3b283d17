package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "bundle-utils" {
		t.Errorf("CLIName() = %q, want %q", got, "bundle-utils")
	}
	if got := HomeDir(); got != ".bundle-utils" {
		t.Errorf("HomeDir() = %q, want %q", got, ".bundle-utils")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("os_name"); got != "BUNDLE_UTILS_OS_NAME" {
		t.Errorf("EnvVar(%q) = %q, want %q", "os_name", got, "BUNDLE_UTILS_OS_NAME")
	}
}
