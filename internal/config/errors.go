package config

// Error is a custom error type for configuration errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingToken Error = "DISCORD_TOKEN environment variable is required"
)
