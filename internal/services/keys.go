package services

// Storage keys. Every value the logbook persists lives under one of these.
const (
	KeyCarName         = "carcare_car_name"
	KeyMaintenanceLogs = "carcare_maintenance_logs"
	KeyTheme           = "carcare_theme"
	KeyFirstTime       = "carcare_first_time"
	KeyLanguage        = "carcare_language"
)

// AllKeys lists every key removed by ClearAllData.
var AllKeys = []string{
	KeyCarName,
	KeyMaintenanceLogs,
	KeyTheme,
	KeyFirstTime,
	KeyLanguage,
}
