package config

import "fmt"

// Config holds runtime settings for the resumeportal CLI.
type Config struct {
	// APIEndpoint is scheme://host[:port] of the backend; requests go to
	// {APIEndpoint}/api/{resource}.
	APIEndpoint string
	// StoragePath is the SQLite file holding the session token.
	StoragePath string
	// LogFile, when set, sends logs to a rotating file instead of stderr.
	LogFile  string
	LogLevel string
	// Ephemeral keeps the session in memory only.
	Ephemeral bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = "http://localhost:3000"
	c.StoragePath = "session.db"
	c.LogFile = ""
	c.LogLevel = "info"
	c.Ephemeral = false
}

// LoadConfig applies defaults, then the environment (including a .env file in
// the working directory), then a JSON file named by -c/-config, then flags.
// Later sources take precedence over earlier ones. args excludes the program
// name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, dotEnvFile); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
