package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/carcare/internal/flagx"
)

// parseFlags overlays cfg with -d, -s, -o, -r and -l. Other arguments are
// filtered out first so they cannot trip the parser; a bad value panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-o", "-r", "-l"})

	fs := flag.NewFlagSet("carcare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the SQLite database file")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: sqlite or memory")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "directory for exports and reports")
	days := fs.Int("r", int(cfg.ReminderWindow/(24*time.Hour)), "reminder window in days")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only touch the window when -r was given, so sub-day values from
	// other sources survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			cfg.ReminderWindow = time.Duration(*days) * 24 * time.Hour
		}
	})
}
