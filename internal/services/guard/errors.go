package guard

// Error is a custom error type for guard-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotAdmin      Error = "only the administrator may do that"
	ErrEmptyDomain   Error = "domain cannot be empty"
	ErrEmptyUserID   Error = "user ID cannot be empty"
	ErrNilConfig     Error = "config cannot be nil"
	ErrNilRepository Error = "guard repository cannot be nil"
)
