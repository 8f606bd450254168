package config

import (
	"flag"
	"os"

	"securepay/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database DSN: SQLite path or postgres:// URL
//	-k string   path to the encryption key file
//	-l string   path to the process log file
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (SQLite path or postgres:// URL)")
	fs.StringVar(&cfg.KeyFile, "k", cfg.KeyFile, "path to the encryption key file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "path to the process log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
