package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"jobboard/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.StorageMemory, cfg.Storage)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "0 * * * * *", cfg.ExpiryReportSchedule)
	assert.Empty(t, cfg.RabbitMQURL)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	path := writeConfig(t, `
http_port: "9090"
storage: postgres
db_host: db.internal
db_name: jobboard
jwt_secret: from-file
token_ttl: 24h
log_format: json
time_zone: UTC
`)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, cfg.Storage)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname=jobboard sslmode=disable", cfg.DSN())
	require.NoError(t, cfg.Validate())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      func(t *testing.T) string
		env       map[string]string
		errString string
	}{
		{
			name:      "missing file",
			path:      func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			errString: "failed to read config file",
		},
		{
			name:      "malformed yaml",
			path:      func(t *testing.T) string { return writeConfig(t, "http_port: [") },
			errString: "failed to parse config file",
		},
		{
			name:      "bad token ttl",
			path:      func(*testing.T) string { return "" },
			env:       map[string]string{"TOKEN_TTL": "a week"},
			errString: "TOKEN_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig(tt.path(t))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errString)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() cmd.Config {
		return cmd.Config{
			HTTPPort:  "8080",
			Storage:   cmd.StorageMemory,
			JWTSecret: "secret",
			LogFormat: "json",
			TimeZone:  "UTC",
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *cmd.Config)
		errString string
	}{
		{"port not a number", func(c *cmd.Config) { c.HTTPPort = "http" }, "http port"},
		{"port out of range", func(c *cmd.Config) { c.HTTPPort = "70000" }, "http port"},
		{"unknown storage", func(c *cmd.Config) { c.Storage = "redis" }, "unknown storage"},
		{"postgres without host", func(c *cmd.Config) { c.Storage = cmd.StoragePostgres }, "DB_HOST"},
		{"missing secret", func(c *cmd.Config) { c.JWTSecret = "" }, "JWT secret"},
		{"unknown log format", func(c *cmd.Config) { c.LogFormat = "xml" }, "log format"},
		{"unknown zone", func(c *cmd.Config) { c.TimeZone = "Mars/Olympus" }, "time zone"},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errString)
		})
	}
}
