package discord

// Error is a custom error type for bot setup errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         Error = "config cannot be nil"
	ErrMissingToken      Error = "token cannot be empty"
	ErrNilEconomyService Error = "economy service cannot be nil"
	ErrNilGuardService   Error = "guard service cannot be nil"
	ErrNilQRService      Error = "qr service cannot be nil"
)
