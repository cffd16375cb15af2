package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/resumeportal/internal/flagx"
)

// parseFlags applies the command-line overrides:
//
//	-a string   backend endpoint, scheme://host[:port]
//	-d string   path of the local session database
//	-l string   log file (empty logs to stderr)
//	-v string   log level: debug, info, warn, error
//	-e          keep the session in memory only
//
// Other arguments are filtered out with flagx.FilterArgs first. -e takes no
// value; write -e=false to switch it off.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-v", "-e"})

	fs := flag.NewFlagSet("resumeportal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIEndpoint, "a", cfg.APIEndpoint, "backend endpoint")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "session database path")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Ephemeral, "e", cfg.Ephemeral, "keep the session in memory only")

	return fs.Parse(args)
}
