package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/dmitrijs2005/carcare/internal/models"
)

// Search filters by exact type and then by a case-insensitive substring of
// description, notes or type. Empty arguments disable their filter.
func (s *logService) Search(ctx context.Context, term string, typeFilter string) ([]models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return filterEntries(entries, term, typeFilter), nil
}

func filterEntries(entries []models.MaintenanceEntry, term, typeFilter string) []models.MaintenanceEntry {
	if term == "" && typeFilter == "" {
		return entries
	}

	out := make([]models.MaintenanceEntry, 0, len(entries))
	for _, e := range entries {
		if typeFilter != "" && string(e.Type) != typeFilter {
			continue
		}
		if term != "" && !e.Matches(term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *logService) GetStatistics(ctx context.Context) (models.Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return models.Statistics{}, err
	}
	return statistics(entries), nil
}

// statistics reports the first stored entry as the last service. The
// collection is newest-added first, so a back-dated entry added last wins
// over a later date added earlier.
func statistics(entries []models.MaintenanceEntry) models.Statistics {
	st := models.Statistics{
		TotalEntries: len(entries),
		TotalCost:    models.TotalCost(entries),
		LastService:  models.NeverServiced,
	}
	if len(entries) > 0 {
		st.LastService = models.FormatDay(entries[0].Date)
	}
	return st
}

func (s *logService) Upcoming(ctx context.Context) ([]models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return dueEntries(entries, s.now(), func(due, now time.Time) bool { return due.After(now) }), nil
}

func (s *logService) Overdue(ctx context.Context) ([]models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return dueEntries(entries, s.now(), func(due, now time.Time) bool { return due.Before(now) }), nil
}

// dueEntries keeps entries whose nextDue satisfies keep and orders them by
// nextDue, soonest first. Ties keep stored order.
func dueEntries(entries []models.MaintenanceEntry, now time.Time, keep func(due, now time.Time) bool) []models.MaintenanceEntry {
	type dated struct {
		entry models.MaintenanceEntry
		due   time.Time
	}

	var picked []dated
	for _, e := range entries {
		due, ok := e.DueAt()
		if !ok || !keep(due, now) {
			continue
		}
		picked = append(picked, dated{entry: e, due: due})
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].due.Before(picked[j].due)
	})

	out := make([]models.MaintenanceEntry, len(picked))
	for i, p := range picked {
		out[i] = p.entry
	}
	return out
}

// Reminder reports overdue work first; otherwise the soonest upcoming entry
// if it falls inside the reminder window. The bool is false when there is
// nothing to say.
func (s *logService) Reminder(ctx context.Context) (models.Reminder, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return models.Reminder{}, false, err
	}

	now := s.now()
	overdue := dueEntries(entries, now, func(due, now time.Time) bool { return due.Before(now) })
	if n := len(overdue); n > 0 {
		return models.Reminder{
			Level:   models.ReminderOverdue,
			Count:   n,
			Message: overdueMessage(n),
		}, true, nil
	}

	upcoming := dueEntries(entries, now, func(due, now time.Time) bool { return due.After(now) })
	if len(upcoming) == 0 {
		return models.Reminder{}, false, nil
	}

	next := upcoming[0]
	due, _ := next.DueAt()
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	if days > windowDays(s.reminderWindow) {
		return models.Reminder{}, false, nil
	}

	return models.Reminder{
		Level:   models.ReminderSoon,
		Entry:   &next,
		Count:   1,
		Days:    days,
		Message: soonMessage(next.Type, days),
	}, true, nil
}

func windowDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
