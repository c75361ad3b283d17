package mongodb

import (
	"testing"

	"github.com/bundlekit/bundle-utils/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRelease_DefaultURLs(t *testing.T) {
	version, err := ParseVersion(DefaultVersion)
	require.NoError(t, err)

	tests := []struct {
		os   platform.OSType
		want string
		file string
	}{
		{platform.Windows, "http://downloads.mongodb.org/win32/mongodb-win32-x86_64-2008plus-ssl-v3.4-latest-signed.msi", "mongodb.msi"},
		{platform.MacOS, "http://downloads.mongodb.org/osx/mongodb-osx-x86_64-3.4.4.tgz", "mongodb.tgz"},
		{platform.Linux, "http://downloads.mongodb.org/linux/mongodb-linux-x86_64-3.4.4.tgz", "mongodb.tgz"},
	}

	for _, tt := range tests {
		t.Run(tt.os.String(), func(t *testing.T) {
			rel, ok := ResolveRelease(tt.os, version)
			require.True(t, ok)

			got := rel.Apply(DefaultURLTemplate)
			assert.Equal(t, tt.want, got)
			assert.False(t, Unresolved(got))
			assert.Equal(t, tt.file, OutputName(tt.os))
		})
	}
}

func TestResolveRelease_Other(t *testing.T) {
	version, err := ParseVersion(DefaultVersion)
	require.NoError(t, err)

	_, ok := ResolveRelease(platform.Other, version)
	assert.False(t, ok)
	assert.True(t, Unresolved(DefaultURLTemplate))
}

func TestResolveRelease_WindowsBuildFollowsVersion(t *testing.T) {
	version, err := ParseVersion("v3.6.2")
	require.NoError(t, err)

	rel, ok := ResolveRelease(platform.Windows, version)
	require.True(t, ok)
	assert.Equal(t, "2008plus-ssl-v3.6-latest-signed", rel.Version)

	rel, ok = ResolveRelease(platform.Linux, version)
	require.True(t, ok)
	assert.Equal(t, "3.6.2", rel.Version)
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, v := range []string{"", "latest", "3.4.x.y"} {
		_, err := ParseVersion(v)
		assert.Error(t, err, "version %q", v)
	}
}
