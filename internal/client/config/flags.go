package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobhub/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only -a, -d, -t, -m and -l are looked at; other arguments (for example
// -c used by the JSON loader) are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the authentication API")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "path of the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "address for the /metrics endpoint")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// keep sub-second values from JSON or env unless -t was given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
