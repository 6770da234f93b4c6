package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/carcare/internal/flagx"
	"github.com/dmitrijs2005/carcare/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value.
type JsonConfig struct {
	DBPath         *string         `json:"db_path"`
	Storage        *string         `json:"storage"`
	ExportDir      *string         `json:"export_dir"`
	ReminderWindow *timex.Duration `json:"reminder_window"`
	Log            *JsonLogConfig  `json:"log"`
}

type JsonLogConfig struct {
	Level      *string `json:"level"`
	Backend    *string `json:"backend"`
	Format     *string `json:"format"`
	File       *string `json:"file"`
	MaxSizeMB  *int    `json:"max_size_mb"`
	MaxBackups *int    `json:"max_backups"`
	MaxAgeDays *int    `json:"max_age_days"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without
// the flag it does nothing; read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set(&cfg.DBPath, jc.DBPath)
	set(&cfg.Storage, jc.Storage)
	set(&cfg.ExportDir, jc.ExportDir)
	if jc.ReminderWindow != nil {
		cfg.ReminderWindow = jc.ReminderWindow.Duration
	}

	if l := jc.Log; l != nil {
		set(&cfg.LogLevel, l.Level)
		set(&cfg.LogBackend, l.Backend)
		set(&cfg.LogFormat, l.Format)
		set(&cfg.LogFile, l.File)
		set(&cfg.LogMaxSizeMB, l.MaxSizeMB)
		set(&cfg.LogMaxBackups, l.MaxBackups)
		set(&cfg.LogMaxAgeDays, l.MaxAgeDays)
	}
}
