package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
shutdown_timeout = 30

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
service_name = "test-service"

[storage]
backend = "postgres"

[storage.postgres]
host = "db.internal"
port = 5433
user = "svc"
password = "secret"
dbname = "appointments"
sslmode = "require"

[slots]
horizon_days = 14
week_start = "monday"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, 14, cfg.Slots.HorizonDays)
	assert.Equal(t, domain.WeekStartMonday, cfg.Slots.WeekStart)

	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=secret dbname=appointments sslmode=require",
		cfg.Storage.Postgres.DSN())
}

func TestLoad_DefaultsApply(t *testing.T) {
	path := writeConfig(t, `
[logs]
level = "info"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "storage/bookings.json", cfg.Storage.File.Path)
	assert.Equal(t, domain.DefaultHorizonDays, cfg.Slots.HorizonDays)
	assert.Equal(t, domain.DefaultDayStartHour, cfg.Slots.DayStartHour)
	assert.Equal(t, domain.DefaultDayEndHour, cfg.Slots.DayEndHour)
	assert.Equal(t, domain.DefaultIntervalMinutes, cfg.Slots.IntervalMinutes)
	assert.Equal(t, domain.WeekStartToday, cfg.Slots.WeekStart)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "redis"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestLoad_UnknownWeekStart(t *testing.T) {
	path := writeConfig(t, `
[slots]
week_start = "sunday"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown week_start")
}

func TestLoad_InvalidWorkingHours(t *testing.T) {
	path := writeConfig(t, `
[slots]
day_start_hour = 18
day_end_hour = 9
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid working hours")
}

func TestLoad_InvalidInterval(t *testing.T) {
	path := writeConfig(t, `
[slots]
interval_minutes = 7
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "interval_minutes")
}
