// Package config manages user-level settings stored at ~/.bundle-utils/config.yaml.
// It loads the file and BUNDLE_UTILS_* environment overrides through Viper,
// exposes typed accessors for the keys the actions read, and validates the
// file against an embedded JSON schema.
package config
