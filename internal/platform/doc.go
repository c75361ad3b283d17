// Package platform classifies the host operating system into the closed set
// of categories used to pick platform-specific downloads.
package platform
