package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overrides only what is set", func(t *testing.T) {
		t.Setenv("JOBHUB_API_URL", "https://env.example")
		t.Setenv("JOBHUB_REQUEST_TIMEOUT", "750ms")
		t.Setenv("JOBHUB_RATE_BURST", "9")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "https://env.example", cfg.APIURL)
		assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, 9, cfg.RateBurst)
		assert.Equal(t, "session.db", cfg.StoragePath)
		assert.Equal(t, 2.0, cfg.RateLimit)
	})

	t.Run("bad value panics", func(t *testing.T) {
		t.Setenv("JOBHUB_RATE_BURST", "many")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
