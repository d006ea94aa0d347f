package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cashdesk/internal/config"
)

func TestLoadDefaultDataDir(t *testing.T) {
	t.Setenv("CASHDESK_DATA_DIR", "")
	cfg := config.Load()
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadCustomDataDir(t *testing.T) {
	t.Setenv("CASHDESK_DATA_DIR", "/var/lib/cashdesk")
	cfg := config.Load()
	assert.Equal(t, "/var/lib/cashdesk", cfg.DataDir)
}
