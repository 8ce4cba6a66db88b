package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "LOG_FORMAT", "SEED_PATH", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REPORTER_SCHEDULE", "REPORTER_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "", cfg.Seed.Path)
	assert.Equal(t, "*/30 * * * * *", cfg.Reporter.Schedule)
	assert.True(t, cfg.Reporter.Enabled)
	assert.Equal(t, "", cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SEED_PATH", "/data/sample.yaml")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REPORTER_SCHEDULE", "@every 1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/data/sample.yaml", cfg.Seed.Path)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "@every 1m", cfg.Reporter.Schedule)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8080},
			Logging:   LoggingConfig{Format: "json"},
			RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
			Reporter:  ReporterConfig{Enabled: true, Schedule: "*/30 * * * * *"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "zero rate", mutate: func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimit.Burst = 0 }, wantErr: true},
		{name: "empty schedule", mutate: func(c *Config) { c.Reporter.Schedule = "" }, wantErr: true},
		{name: "bad schedule", mutate: func(c *Config) { c.Reporter.Schedule = "every now and then" }, wantErr: true},
		{name: "disabled reporter ignores schedule", mutate: func(c *Config) {
			c.Reporter.Enabled = false
			c.Reporter.Schedule = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
