package config

import "time"

// Config holds runtime settings for the JobHub CLI.
//
// Fields:
//   - APIURL: base URL of the authentication service.
//   - StoragePath: SQLite file holding the persisted session.
//   - RequestTimeout: upper bound for a single API request.
//   - RateLimit, RateBurst: client-side limit on outbound API requests.
//   - MetricsAddr: host:port for the Prometheus endpoint; empty disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIURL         string        `env:"JOBHUB_API_URL"`
	StoragePath    string        `env:"JOBHUB_STORAGE_PATH"`
	RequestTimeout time.Duration `env:"JOBHUB_REQUEST_TIMEOUT"`
	RateLimit      float64       `env:"JOBHUB_RATE_LIMIT"`
	RateBurst      int           `env:"JOBHUB_RATE_BURST"`
	MetricsAddr    string        `env:"JOBHUB_METRICS_ADDR"`
	LogLevel       string        `env:"JOBHUB_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "https://serverjobhub2.onrender.com"
	c.StoragePath = "session.db"
	c.RequestTimeout = 15 * time.Second
	c.RateLimit = 2
	c.RateBurst = 4
	c.MetricsAddr = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
