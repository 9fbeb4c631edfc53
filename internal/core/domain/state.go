package domain

// State is a stage of one compile pipeline run.
type State string

const (
	// StateResolving maps the request onto a source file and builds the context.
	StateResolving State = "resolving"
	// StateFingerprinting computes the content fingerprint.
	StateFingerprinting State = "fingerprinting"
	// StateDecidingReuse compares the fingerprint with the stored one.
	StateDecidingReuse State = "deciding_reuse"
	// StateReusing serves the cached output.
	StateReusing State = "reusing"
	// StateCompiling runs the compiler and persists output and fingerprint.
	StateCompiling State = "compiling"
	// StatePublishing builds the artifact reference.
	StatePublishing State = "publishing"
	// StateDone indicates the run returned an artifact.
	StateDone State = "done"
	// StateFailed indicates the run stopped with an error.
	StateFailed State = "failed"
)

// IsTerminal reports whether no further transition can follow s.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}
