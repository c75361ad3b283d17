package action

// Action is a single pluggable command. Implementations hold no state between
// invocations and are constructed fresh for each run.
type Action interface {
	// Execute performs the task. If args do not fit the action's shape it
	// calls Help instead and performs no network or file work. Failures are
	// reported on the diagnostic output, never returned.
	Execute(args []string)

	// Help writes usage text to the diagnostic output.
	Help()
}

// Factory constructs a fresh Action.
type Factory func() Action
