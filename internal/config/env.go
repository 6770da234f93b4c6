package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/dmitrijs2005/carcare/internal/flagx"
	"github.com/dmitrijs2005/carcare/internal/timex"
	"github.com/joho/godotenv"
)

const envPrefix = "CARCARE_"

// defaultEnvFile is read when present; a missing one is not an error.
const defaultEnvFile = ".env"

// envSource resolves variables from the process first and the dotenv file
// second.
func envSource(args []string, lookup func(string) (string, bool)) func(string) (string, bool) {
	path := flagx.EnvFilePath(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	file, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("failed to read env file %s: %w", path, err))
		}
		file = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
}

// parseEnv overlays cfg with CARCARE_* variables. Unset variables leave the
// current value; malformed numbers panic.
func parseEnv(cfg *Config, args []string, lookup func(string) (string, bool)) {
	get := envSource(args, lookup)

	str := func(name string, dst *string) {
		if v, ok := get(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		v, ok := get(envPrefix + name)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s%s: %w", envPrefix, name, err))
		}
		*dst = n
	}

	str("DB_PATH", &cfg.DBPath)
	str("STORAGE", &cfg.Storage)
	str("EXPORT_DIR", &cfg.ExportDir)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_BACKEND", &cfg.LogBackend)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("LOG_FILE", &cfg.LogFile)
	num("LOG_MAX_SIZE_MB", &cfg.LogMaxSizeMB)
	num("LOG_MAX_BACKUPS", &cfg.LogMaxBackups)
	num("LOG_MAX_AGE_DAYS", &cfg.LogMaxAgeDays)

	if v, ok := get(envPrefix + "REMINDER_WINDOW"); ok && v != "" {
		d, err := timex.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%sREMINDER_WINDOW: %w", envPrefix, err))
		}
		cfg.ReminderWindow = d
	}
}
