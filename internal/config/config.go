package config

import (
	"os"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string

	// AdminID is the Discord user ID allowed to run admin commands
	AdminID string

	// CommandPrefix precedes every command, "!" by default
	CommandPrefix string

	// DataFile is the ledger document path for the file backend
	DataFile string

	// GuardFile is the link-guard configuration path
	GuardFile string

	// TagContentFile holds the broadcast text for the tag command
	TagContentFile string

	// RedisAddr selects the redis ledger backend when set
	RedisAddr string

	// LogLevel is a logrus level name, "info" by default
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		AdminID:        os.Getenv("ADMIN_ID"),
		CommandPrefix:  getEnvWithDefault("COMMAND_PREFIX", "!"),
		DataFile:       getEnvWithDefault("DATA_FILE", "data/ledger.json"),
		GuardFile:      getEnvWithDefault("GUARD_FILE", "data/guard.json"),
		TagContentFile: getEnvWithDefault("TAG_CONTENT_FILE", "data/tag.txt"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

// getEnvWithDefault gets an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
