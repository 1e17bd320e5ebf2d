package tagger

// Error is a custom error type for tagger-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotAdmin       Error = "only the administrator may do that"
	ErrAlreadyRunning Error = "a broadcast is already running in this channel"
	ErrNotRunning     Error = "no broadcast is running in this channel"
	ErrNoTargets      Error = "at least one target is required"
	ErrNilConfig      Error = "config cannot be nil"
	ErrNilPublisher   Error = "publisher cannot be nil"
)
