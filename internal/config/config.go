package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bundlekit/bundle-utils/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised configuration keys.
const (
	KeyLogLevel           = "log.level"
	KeyMongoDBVersion     = "mongodb.version"
	KeyMongoDBURLTemplate = "mongodb.url_template"
)

// Defaults applied when a key is neither in the file nor the environment.
const (
	DefaultLogLevel           = "info"
	DefaultMongoDBVersion     = "3.4.4"
	DefaultMongoDBURLTemplate = "http://downloads.mongodb.org/@OS/mongodb-@OS-x86_64-@VERSION.@EXT"
)

// Dir returns the path to the config directory (~/.bundle-utils/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bundle-utils/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
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
// Nested keys map to env vars with dots replaced, e.g. mongodb.version is
// read from BUNDLE_UTILS_MONGODB_VERSION.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyMongoDBVersion, DefaultMongoDBVersion)
	viper.SetDefault(KeyMongoDBURLTemplate, DefaultMongoDBURLTemplate)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// LogLevel returns the configured log level.
func LogLevel() string {
	return getOr(KeyLogLevel, DefaultLogLevel)
}

// MongoDBVersion returns the MongoDB release version to download.
func MongoDBVersion() string {
	return getOr(KeyMongoDBVersion, DefaultMongoDBVersion)
}

// MongoDBURLTemplate returns the placeholder URL the download action resolves.
func MongoDBURLTemplate() string {
	return getOr(KeyMongoDBURLTemplate, DefaultMongoDBURLTemplate)
}

func getOr(key, fallback string) string {
	if v := strings.TrimSpace(viper.GetString(key)); v != "" {
		return v
	}
	return fallback
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
