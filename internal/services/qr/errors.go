package qr

// Error is a custom error type for QR-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyContent Error = "content cannot be empty"
	ErrBadColor     Error = "color must be in #RRGGBB form"
	ErrNilConfig    Error = "config cannot be nil"
)
