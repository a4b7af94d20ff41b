// Package config loads runtime configuration for the JobHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (JOBHUB_*), after an optional .env file is loaded.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the authentication API
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//	-m string   address for the /metrics endpoint (empty disables it)
//	-l string   log level
//
// # JSON schema
//
// Durations accept either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_url": "https://serverjobhub2.onrender.com",
//	  "storage_path": "session.db",
//	  "request_timeout": "15s",
//	  "rate_limit": 2,
//	  "rate_burst": 4,
//	  "metrics_addr": "127.0.0.1:9464",
//	  "log_level": "info"
//	}
package config
