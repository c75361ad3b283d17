package platform

import (
	"runtime"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want OSType
	}{
		{"Windows 10", Windows},
		{"WINDOWS SERVER 2019", Windows},
		{"windows", Windows},
		{"Mac OS X", MacOS},
		{"macOS", MacOS},
		{"Linux", Linux},
		{"GNU/Linux", Linux},
		{"Unix", Linux},
		{"AIX", Linux},
		{"SunOS", Other},
		{"FreeBSD", Other},
		{"", Other},
		// "win" is checked before "mac", so a name with both is Windows.
		{"darwin", Windows},
		{"mac-on-win", Windows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestOSTypeString(t *testing.T) {
	tests := map[OSType]string{
		Windows: "windows",
		MacOS:   "macos",
		Linux:   "linux",
		Other:   "other",
	}
	for os, want := range tests {
		if got := os.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(os), got, want)
		}
	}
}

func TestHostName_EnvOverride(t *testing.T) {
	t.Setenv("BUNDLE_UTILS_OS_NAME", "Windows 11")
	if got := HostName(); got != "Windows 11" {
		t.Errorf("HostName() = %q, want %q", got, "Windows 11")
	}
	if got := Detect(); got != Windows {
		t.Errorf("Detect() = %v, want %v", got, Windows)
	}
}

func TestDetect_Runtime(t *testing.T) {
	t.Setenv("BUNDLE_UTILS_OS_NAME", "")

	want := Other
	switch runtime.GOOS {
	case "windows":
		want = Windows
	case "darwin":
		want = MacOS
	case "linux", "aix":
		want = Linux
	}
	if got := Detect(); got != want {
		t.Errorf("Detect() on %s = %v, want %v", runtime.GOOS, got, want)
	}
}

func TestGoosName(t *testing.T) {
	// Every mapped name must classify back to the expected category.
	tests := map[string]OSType{
		"windows": Windows,
		"darwin":  MacOS,
		"linux":   Linux,
		"aix":     Linux,
		"plan9":   Other,
	}
	for goos, want := range tests {
		if got := Classify(goosName(goos)); got != want {
			t.Errorf("Classify(goosName(%q)) = %v, want %v", goos, got, want)
		}
	}
}
