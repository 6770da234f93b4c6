package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/carcare/internal/logging"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

var ErrInvalidStorage = errors.New("storage must be sqlite or memory")

// Config holds runtime settings for the carcare CLI.
type Config struct {
	DBPath         string
	Storage        string
	ExportDir      string
	ReminderWindow time.Duration

	LogLevel      string
	LogBackend    string
	LogFormat     string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "carcare.db"
	c.Storage = StorageSQLite
	c.ExportDir = "exports"
	c.ReminderWindow = 7 * 24 * time.Hour

	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.LogFormat = logging.FormatText
	c.LogFile = ""
	c.LogMaxSizeMB = 10
	c.LogMaxBackups = 3
	c.LogMaxAgeDays = 28
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStorage, c.Storage)
	}
	if c.ReminderWindow < 0 {
		return fmt.Errorf("reminder window must not be negative: %s", c.ReminderWindow)
	}
	return nil
}

// LogOptions maps the log settings onto logging.Options.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		Backend:    c.LogBackend,
		Format:     c.LogFormat,
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}

// LoadConfig builds a Config from defaults, the environment, an optional
// JSON file and flags, in that order. It panics on unreadable or invalid
// sources.
func LoadConfig() *Config {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args, lookup)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
