// Package config loads runtime configuration for the resumeportal CLI.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. RESUMEPORTAL_* environment variables, also read from a .env file in
//     the working directory (process environment wins over the file).
//  3. A JSON file selected with -c or -config.
//  4. Command-line flags -a, -d, -l, -v and -e.
//
// JSON keys:
//
//	{
//	  "api_endpoint": "http://localhost:3000",
//	  "storage_path": "session.db",
//	  "log_file": "",
//	  "log_level": "info",
//	  "ephemeral": false
//	}
package config
