// Package action defines the contract every pluggable command implements,
// the registry the CLI dispatches through, and the error boundary that keeps
// a failing action from propagating past Execute.
package action
