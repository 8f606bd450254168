package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "securepay.db", cfg.DatabaseDSN)
	assert.Equal(t, "securepay.key", cfg.KeyFile)
	assert.Equal(t, "securepay.log", cfg.LogFile)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"securepay", "-d", "postgres://localhost/securepay", "-k", "/tmp/alt.key"}

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/securepay", cfg.DatabaseDSN)
	assert.Equal(t, "/tmp/alt.key", cfg.KeyFile)
	assert.Equal(t, "securepay.log", cfg.LogFile)
}
