// Package alignment parses alignment command flags and runs the
// reconciliation sweep.
package alignment

import (
	"flag"

	entrypoint "github.com/veilstar/forcealignment/internal/platform/cmd"
)

// Config holds alignment command configuration.
type Config struct {
	DBPath string `env:"FORCE_ALIGNMENT_DB_PATH" envDefault:"force-alignment.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the flag store database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
