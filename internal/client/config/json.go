package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/resumeportal/internal/flagx"
)

// JSONConfig is the on-disk shape; absent keys leave the current value alone.
type JSONConfig struct {
	APIEndpoint *string `json:"api_endpoint"`
	StoragePath *string `json:"storage_path"`
	LogFile     *string `json:"log_file"`
	LogLevel    *string `json:"log_level"`
	Ephemeral   *bool   `json:"ephemeral"`
}

// parseJSON overlays cfg with the file given by -c/-config. Without the flag
// it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.APIEndpoint != nil {
		cfg.APIEndpoint = *jc.APIEndpoint
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
	return nil
}
