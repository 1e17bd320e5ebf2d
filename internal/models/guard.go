package models

// GuardAction is what the link guard does on a violation
type GuardAction string

const (
	// GuardActionDelete removes the offending message
	GuardActionDelete GuardAction = "delete"

	// GuardActionWarn posts a warning without deleting
	GuardActionWarn GuardAction = "warn"

	// GuardActionMute deletes the message and announces a mute
	GuardActionMute GuardAction = "mute"
)

// GuardConfig is the persisted link moderation configuration
type GuardConfig struct {
	// Enabled toggles message inspection
	Enabled bool `json:"enabled"`

	// AllowedDomains are domains that may be linked
	AllowedDomains []string `json:"allowedDomains"`

	// AllowedUsers are user IDs exempt from inspection
	AllowedUsers []string `json:"allowedUsers"`

	// SendWarning controls whether a warning is posted after a delete
	SendWarning bool `json:"sendWarning"`

	// WarnMessage is the warning text posted on a violation
	WarnMessage string `json:"warnMessage"`

	// Action taken on a violation
	Action GuardAction `json:"action"`
}

// DefaultGuardConfig returns the configuration used before any admin edits
func DefaultGuardConfig() *GuardConfig {
	return &GuardConfig{
		Enabled:        false,
		AllowedDomains: []string{},
		AllowedUsers:   []string{},
		SendWarning:    true,
		WarnMessage:    "⚠️ Links are not allowed in this channel!",
		Action:         GuardActionDelete,
	}
}
