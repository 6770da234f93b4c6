package models

import "time"

// ExportVersion tags every export document.
const ExportVersion = "1.0"

// ExportDocument is the portable snapshot written by export and read by
// import.
type ExportDocument struct {
	CarName         string             `json:"carName"`
	Theme           Theme              `json:"theme"`
	MaintenanceLogs []MaintenanceEntry `json:"maintenanceLogs"`
	ExportDate      time.Time          `json:"exportDate"`
	Version         string             `json:"version"`
}

// ImportResult reports the outcome of an import. Err is set on failure and
// can be matched with errors.Is.
type ImportResult struct {
	Success bool   `json:"success"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Statistics is the summary shown above the history.
type Statistics struct {
	TotalEntries int    `json:"totalEntries"`
	TotalCost    string `json:"totalCost"`
	LastService  string `json:"lastService"`
}

// NeverServiced is the LastService value of an empty log.
const NeverServiced = "Never"

// ReminderLevel ranks how urgent a reminder is.
type ReminderLevel string

const (
	ReminderOverdue ReminderLevel = "error"
	ReminderSoon    ReminderLevel = "warning"
)

// Reminder is the one-line nudge shown at startup.
type Reminder struct {
	Level   ReminderLevel
	Message string
	// Entry is the upcoming entry the reminder is about; nil for the
	// overdue summary.
	Entry *MaintenanceEntry
	Count int
	Days  int
}
