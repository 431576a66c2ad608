package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("SETTLE_INTERVAL_MS")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "scheduleplanner", cfg.DBName)
	assert.Equal(t, "schedule-planner", cfg.UploadFolder)
	assert.Equal(t, 150, cfg.SettleIntervalMS)
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("S3_BUCKET_NAME", "my-bucket")
	os.Setenv("SETTLE_INTERVAL_MS", "200")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("S3_BUCKET_NAME")
		os.Unsetenv("SETTLE_INTERVAL_MS")
	}()

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "my-bucket", cfg.S3BucketName)
	assert.Equal(t, 200, cfg.SettleIntervalMS)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Setenv("SETTLE_INTERVAL_MS", "not-a-number")
	defer os.Unsetenv("SETTLE_INTERVAL_MS")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 150, cfg.SettleIntervalMS)
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_KEY_XYZ", "value")
	defer os.Unsetenv("TEST_KEY_XYZ")

	assert.Equal(t, "value", getEnv("TEST_KEY_XYZ", "default"))
	assert.Equal(t, "default", getEnv("TEST_KEY_MISSING", "default"))
}
