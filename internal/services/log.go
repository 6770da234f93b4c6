// Package services implements the maintenance log store: the entry
// collection, the car profile and the export document codec, all kept in a
// kv.Store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/carcare/internal/kv"
	"github.com/dmitrijs2005/carcare/internal/logging"
	"github.com/dmitrijs2005/carcare/internal/models"
	"github.com/google/uuid"
)

// DefaultReminderWindow is how far ahead Reminder looks for upcoming work.
const DefaultReminderWindow = 7 * 24 * time.Hour

// LogService is the logbook API consumed by the front ends.
type LogService interface {
	AddEntry(ctx context.Context, fields models.EntryFields) (*models.MaintenanceEntry, error)
	ListEntries(ctx context.Context) ([]models.MaintenanceEntry, error)
	FindByID(ctx context.Context, id string) (*models.MaintenanceEntry, error)
	UpdateEntry(ctx context.Context, id string, patch models.EntryPatch) (*models.MaintenanceEntry, error)
	DeleteEntry(ctx context.Context, id string) ([]models.MaintenanceEntry, error)

	Search(ctx context.Context, term string, typeFilter string) ([]models.MaintenanceEntry, error)
	GetStatistics(ctx context.Context) (models.Statistics, error)
	Upcoming(ctx context.Context) ([]models.MaintenanceEntry, error)
	Overdue(ctx context.Context) ([]models.MaintenanceEntry, error)
	Reminder(ctx context.Context) (models.Reminder, bool, error)

	ExportData(ctx context.Context) ([]byte, error)
	ImportData(ctx context.Context, data []byte) models.ImportResult
	ClearAllData(ctx context.Context) error

	CarName(ctx context.Context) (string, error)
	SetCarName(ctx context.Context, name string) error
	Theme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, theme models.Theme) error
	Language(ctx context.Context) (models.Language, error)
	SetLanguage(ctx context.Context, lang models.Language) error
	IsFirstTime(ctx context.Context) (bool, error)
	CompleteFirstRun(ctx context.Context) error
	Profile(ctx context.Context) (models.Profile, error)
}

type logService struct {
	// mu serializes every operation so read-modify-write sequences never
	// interleave.
	mu    sync.Mutex
	store kv.Store
	log   logging.Logger

	now            func() time.Time
	newID          func() string
	reminderWindow time.Duration
}

// Option customizes a LogService.
type Option func(*logService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *logService) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(gen func() string) Option {
	return func(s *logService) { s.newID = gen }
}

func WithLogger(l logging.Logger) Option {
	return func(s *logService) { s.log = l }
}

func WithReminderWindow(d time.Duration) Option {
	return func(s *logService) {
		if d > 0 {
			s.reminderWindow = d
		}
	}
}

func NewLogService(store kv.Store, opts ...Option) LogService {
	s := &logService{
		store:          store,
		log:            logging.NewNopLogger(),
		now:            time.Now,
		newID:          uuid.NewString,
		reminderWindow: DefaultReminderWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var errIDExhausted = errors.New("could not generate a unique id")

func (s *logService) loadEntries(ctx context.Context, r kv.Repository) ([]models.MaintenanceEntry, error) {
	raw, err := r.Get(ctx, KeyMaintenanceLogs)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance logs: %w", err)
	}

	entries := []models.MaintenanceEntry{}
	if len(raw) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode maintenance logs: %w", err)
	}
	if entries == nil {
		entries = []models.MaintenanceEntry{}
	}
	return entries, nil
}

func (s *logService) saveEntries(ctx context.Context, r kv.Repository, entries []models.MaintenanceEntry) error {
	if entries == nil {
		entries = []models.MaintenanceEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode maintenance logs: %w", err)
	}
	if err := r.Set(ctx, KeyMaintenanceLogs, raw); err != nil {
		return fmt.Errorf("failed to save maintenance logs: %w", err)
	}
	return nil
}

func (s *logService) uniqueID(taken map[string]struct{}) (string, error) {
	for range 8 {
		id := s.newID()
		if _, dup := taken[id]; id != "" && !dup {
			return id, nil
		}
	}
	return "", errIDExhausted
}

func indexOf(entries []models.MaintenanceEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func idSet(entries []models.MaintenanceEntry) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e.ID] = struct{}{}
	}
	return set
}
