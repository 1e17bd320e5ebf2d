package guard

import (
	"github.com/dxtdz/sicbot/internal/models"
	guardRepo "github.com/dxtdz/sicbot/internal/repositories/guard"
)

// Config holds configuration for the guard service
type Config struct {
	// AdminID is the one user allowed to change guard settings; the
	// administrator's own messages are never inspected
	AdminID string

	// Repository dependency
	Repo guardRepo.Repository
}

// StatusInput contains parameters for reading the guard configuration
type StatusInput struct{}

// StatusOutput is a snapshot of the guard configuration
type StatusOutput struct {
	Config models.GuardConfig
}

// SetEnabledInput toggles message inspection
type SetEnabledInput struct {
	CallerID string
	Enabled  bool
}

// SetEnabledOutput contains the applied state
type SetEnabledOutput struct {
	Enabled bool
}

// AllowDomainInput adds a domain to the whitelist
type AllowDomainInput struct {
	CallerID string
	Domain   string
}

// AllowDomainOutput reports whether the domain was newly added
type AllowDomainOutput struct {
	Domain string
	Added  bool
}

// DisallowDomainInput removes a domain from the whitelist
type DisallowDomainInput struct {
	CallerID string
	Domain   string
}

// DisallowDomainOutput reports whether the domain was present
type DisallowDomainOutput struct {
	Domain  string
	Removed bool
}

// AllowUserInput exempts a user from inspection
type AllowUserInput struct {
	CallerID string
	UserID   string
}

// AllowUserOutput reports whether the user was newly added
type AllowUserOutput struct {
	UserID string
	Added  bool
}

// DisallowUserInput removes a user exemption
type DisallowUserInput struct {
	CallerID string
	UserID   string
}

// DisallowUserOutput reports whether the user was present
type DisallowUserOutput struct {
	UserID  string
	Removed bool
}

// InspectInput contains a message to check for links
type InspectInput struct {
	// AuthorID is the message author
	AuthorID string

	// Content is the message text
	Content string
}

// InspectOutput is the moderation verdict for a message
type InspectOutput struct {
	// Blocked means the message violates the link policy
	Blocked bool

	// Domains are the detected, non-whitelisted domains
	Domains []string

	// Action to take, copied from the configuration
	Action models.GuardAction

	// SendWarning mirrors the configuration flag
	SendWarning bool

	// WarnMessage is the configured warning text
	WarnMessage string
}
