// Package config loads runtime configuration for the carcare CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (".env" in the working directory, or the file given
//     with -e / -env-file) and CARCARE_* environment variables. Variables
//     already set in the process win over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-s string   storage backend: sqlite or memory
//	-o string   directory for exports and PDF reports
//	-r int      reminder window in days
//	-l string   log level: debug, info, warn or error
//
// Environment
//
//	CARCARE_DB_PATH, CARCARE_STORAGE, CARCARE_EXPORT_DIR,
//	CARCARE_REMINDER_WINDOW ("7d", "36h"), CARCARE_LOG_LEVEL,
//	CARCARE_LOG_BACKEND, CARCARE_LOG_FORMAT, CARCARE_LOG_FILE,
//	CARCARE_LOG_MAX_SIZE_MB, CARCARE_LOG_MAX_BACKUPS, CARCARE_LOG_MAX_AGE_DAYS
//
// # JSON schema
//
// Durations use timex.Duration, so "7d", "168h" and integer nanoseconds are
// all accepted. Absent keys leave the current value alone:
//
//	{
//	  "db_path": "carcare.db",
//	  "storage": "sqlite",
//	  "export_dir": "exports",
//	  "reminder_window": "7d",
//	  "log": {"level": "info", "backend": "zerolog", "format": "text", "file": ""}
//	}
package config
