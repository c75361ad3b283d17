// Package cli defines the Cobra command tree for the bundle-utils CLI. Every
// registered action becomes a top-level command that forwards its raw
// arguments to the action; the remaining files add the actions, config and
// version commands.
package cli
