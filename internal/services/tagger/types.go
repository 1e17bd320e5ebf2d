package tagger

import (
	"time"
)

// Publisher sends a broadcast message into a channel. The Discord handler
// implements this against the live session.
type Publisher interface {
	Publish(channelID, content string) error
}

// Config holds configuration for the tagger service
type Config struct {
	// AdminID is the one user allowed to start and stop broadcasts
	AdminID string

	// Interval between messages, defaulting to 3 seconds
	Interval time.Duration

	// Publisher dependency
	Publisher Publisher
}

// StartInput contains parameters for starting a broadcast
type StartInput struct {
	// ChannelID scopes the broadcast; one per channel at a time
	ChannelID string

	// CallerID must match the configured administrator
	CallerID string

	// TargetIDs are the users to mention in every message
	TargetIDs []string

	// Content is the message body; @user, @user2, ... placeholders are
	// replaced with mentions
	Content string
}

// StartOutput contains the started broadcast parameters
type StartOutput struct {
	Targets int
}

// StopInput contains parameters for stopping a broadcast
type StopInput struct {
	ChannelID string
	CallerID  string
}

// StopOutput reports what the stopped broadcast did
type StopOutput struct {
	MessagesSent int
	Targets      int
}
