package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "venue"
password = "secret"
dbname = "venue"
max_open_conns = 20

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "venue-service"

[scheduler]
enabled = true
timezone = "Europe/Moscow"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(PasswordEnv, "from-env")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "5 0 * * *", cfg.Scheduler.CompletionSpec)
	assert.Equal(t, "host=localhost port=5432 user=venue password=from-env dbname=venue sslmode=disable", cfg.Database.DSN())

	loc, err := cfg.Scheduler.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing port", `
[database]
host = "localhost"
port = 5432
user = "venue"
dbname = "venue"
`},
		{"bad log level", strings.Replace(sample, `level = "debug"`, `level = "verbose"`, 1)},
		{"bad timezone", `
[server]
http_port = 8080
[database]
host = "localhost"
port = 5432
user = "venue"
dbname = "venue"
[scheduler]
timezone = "Mars/Olympus"
`},
		{"not toml", "server = ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
