package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with JOBHUB_* variables. A .env file in the working
// directory is loaded first if it exists; variables already set in the
// process environment win over the file. Unset variables leave cfg alone.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
