// Package config handles configuration for the securepay CLI,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for securepay.
//
// Fields:
//   - DatabaseDSN: either a SQLite file path (default) or a postgres:// URL.
//   - KeyFile: path to the symmetric note-encryption key material.
//   - LogFile: path to the append-only process event log. Empty means stdout.
//   - BcryptCost: work factor for password hashing.
type Config struct {
	DatabaseDSN string
	KeyFile     string
	LogFile     string
	BcryptCost  int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "securepay.db"
	c.KeyFile = "securepay.key"
	c.LogFile = "securepay.log"
	c.BcryptCost = 12
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
