package economy

import (
	"fmt"
	"time"
)

// Error is a custom error type for economy-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidChoice    Error = "invalid bet choice"
	ErrStakeTooSmall    Error = "stake below the minimum bet"
	ErrStakeTooLarge    Error = "stake above the maximum bet"
	ErrInvalidAmount    Error = "amount must be positive"
	ErrRequestTooLarge  Error = "requested amount above the request limit"
	ErrGrantTooLarge    Error = "grant above the grant limit"
	ErrTransferTooLarge Error = "transfer above the transfer limit"
	ErrNetNotPositive   Error = "amount after tax must be positive"
	ErrNotAdmin         Error = "only the administrator may do that"
	ErrPlayerNotFound   Error = "player not found"
	ErrNilConfig        Error = "config cannot be nil"
	ErrNilRepository    Error = "ledger repository cannot be nil"
	ErrNilDiceRoller    Error = "dice roller cannot be nil"
)

// InsufficientFundsError rejects a movement that exceeds the relevant
// balance; it carries the shortfall so the reply can show it.
type InsufficientFundsError struct {
	// Source is the balance that came up short, "cash" or "bank"
	Source string

	// Required is the amount the caller asked to move
	Required int64

	// Available is the balance at rejection time
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s: need %d, have %d", e.Source, e.Required, e.Available)
}

// Shortfall is how much the caller is missing
func (e *InsufficientFundsError) Shortfall() int64 {
	return e.Required - e.Available
}

// CooldownError rejects a request-grant made before the cooldown elapsed
type CooldownError struct {
	// Remaining is how long until the next request is allowed
	Remaining time.Duration
}

// Error implements the error interface
func (e *CooldownError) Error() string {
	return fmt.Sprintf("request cooldown active, %s remaining", e.Remaining)
}
