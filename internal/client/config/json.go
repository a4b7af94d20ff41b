package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobhub/internal/flagx"
	"github.com/dmitrijs2005/jobhub/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from a zero value so that a partial file only overrides
// what it mentions.
type JsonConfig struct {
	APIURL         *string         `json:"api_url"`
	StoragePath    *string         `json:"storage_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	RateLimit      *float64        `json:"rate_limit"`
	RateBurst      *int            `json:"rate_burst"`
	MetricsAddr    *string         `json:"metrics_addr"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c / -config.
// It is a no-op when neither flag is given and panics on read or
// decode errors.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != nil {
		cfg.APIURL = *jc.APIURL
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	if jc.RateBurst != nil {
		cfg.RateBurst = *jc.RateBurst
	}
	if jc.MetricsAddr != nil {
		cfg.MetricsAddr = *jc.MetricsAddr
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
