package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "RESUMEPORTAL_"

var dotEnvFile = ".env"

// parseEnv overlays cfg with RESUMEPORTAL_* variables. Values from the
// dotenv file are read first; the process environment wins over them. A
// missing dotenv file is not an error.
func parseEnv(cfg *Config, dotenvPath string) error {
	vars := map[string]string{}
	if dotenvPath != "" {
		m, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			vars = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return err
		}
	}

	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			return v, true
		}
		v, ok := vars[envPrefix+name]
		return v, ok
	}

	if v, ok := lookup("API_ENDPOINT"); ok {
		cfg.APIEndpoint = v
	}
	if v, ok := lookup("STORAGE_PATH"); ok {
		cfg.StoragePath = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("EPHEMERAL"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		cfg.Ephemeral = b
	}
	return nil
}
