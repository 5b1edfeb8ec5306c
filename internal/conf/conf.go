package conf

import "os"

// Config represents application configuration
type Config struct {
	// Telegram bot token
	BotToken string

	// SQLite database path
	DBPath string

	// Debug mode (verbose Telegram API logging)
	Debug bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "moviebot.db"
	}

	return &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		DBPath:   dbPath,
		Debug:    os.Getenv("DEBUG") == "true",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return &ConfigError{Field: "BOT_TOKEN", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
