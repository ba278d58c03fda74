package launcher

// EventKind identifies an observable child-process state transition.
type EventKind int

const (
	// EventStarted fires once the OS confirms the process is running.
	EventStarted EventKind = iota
	// EventFailedToStart fires when the process could not be created.
	EventFailedToStart
	// EventFinished fires when a started process exits, cleanly or not.
	EventFinished
	// EventLaunchDone is the terminal notification, emitted exactly once
	// per launch regardless of outcome, after the launcher is Idle again.
	EventLaunchDone
)

// FailureReason classifies why a process could not be created.
type FailureReason int

const (
	FailureUnknown FailureReason = iota
	// FailureNotFoundOrPermission covers a missing executable and a
	// present one the user may not run; the OS reports both the same way
	// often enough that they share a class.
	FailureNotFoundOrPermission
	FailureCrashedOnStart
	FailureStartTimeout
)

func (r FailureReason) String() string {
	switch r {
	case FailureNotFoundOrPermission:
		return "not-found-or-permission"
	case FailureCrashedOnStart:
		return "crashed-on-start"
	case FailureStartTimeout:
		return "start-timeout"
	default:
		return "unknown"
	}
}

// Event describes one lifecycle transition of the launched process.
// Fields beyond Kind are populated only where they apply: Pid for
// EventStarted, ExitCode/Clean for EventFinished, Reason/Program for
// EventFailedToStart.
type Event struct {
	Kind     EventKind
	Pid      int
	ExitCode int
	Clean    bool
	Reason   FailureReason
	Program  string
}
