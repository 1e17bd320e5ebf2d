package tagger

import (
	"context"
)

// Service defines the interface for repeated tag broadcasts
type Service interface {
	// Start begins a repeating broadcast in a channel, admin only
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Stop ends the channel's broadcast and reports its counters, admin only
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// StopAll ends every running broadcast, used on shutdown
	StopAll()
}
