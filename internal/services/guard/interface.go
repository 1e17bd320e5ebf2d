package guard

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dxtdz/sicbot/internal/services/guard Service

// Service defines the interface for link moderation
type Service interface {
	// Status returns the current configuration
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// SetEnabled toggles inspection, admin only
	SetEnabled(ctx context.Context, input *SetEnabledInput) (*SetEnabledOutput, error)

	// AllowDomain whitelists a domain, admin only
	AllowDomain(ctx context.Context, input *AllowDomainInput) (*AllowDomainOutput, error)

	// DisallowDomain removes a domain from the whitelist, admin only
	DisallowDomain(ctx context.Context, input *DisallowDomainInput) (*DisallowDomainOutput, error)

	// AllowUser exempts a user from inspection, admin only
	AllowUser(ctx context.Context, input *AllowUserInput) (*AllowUserOutput, error)

	// DisallowUser removes a user exemption, admin only
	DisallowUser(ctx context.Context, input *DisallowUserInput) (*DisallowUserOutput, error)

	// Inspect checks a message against the link policy
	Inspect(ctx context.Context, input *InspectInput) (*InspectOutput, error)
}
