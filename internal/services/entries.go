package services

import (
	"context"

	"github.com/dmitrijs2005/carcare/internal/models"
)

func (s *logService) AddEntry(ctx context.Context, fields models.EntryFields) (*models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		s.log.Error(ctx, "failed to add entry", "error", err)
		return nil, err
	}

	id, err := s.uniqueID(idSet(entries))
	if err != nil {
		return nil, err
	}

	e := fields.Entry(id, s.now())
	entries = append([]models.MaintenanceEntry{e}, entries...)

	if err := s.saveEntries(ctx, s.store, entries); err != nil {
		s.log.Error(ctx, "failed to add entry", "error", err)
		return nil, err
	}

	s.log.Info(ctx, "entry added", "id", e.ID, "type", e.Type, "date", e.Date)
	return &e, nil
}

func (s *logService) ListEntries(ctx context.Context) ([]models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadEntries(ctx, s.store)
}

func (s *logService) FindByID(ctx context.Context, id string) (*models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return nil, err
	}

	i := indexOf(entries, id)
	if i < 0 {
		return nil, ErrNotFound
	}
	e := entries[i]
	return &e, nil
}

func (s *logService) UpdateEntry(ctx context.Context, id string, patch models.EntryPatch) (*models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return nil, err
	}

	i := indexOf(entries, id)
	if i < 0 {
		s.log.Debug(ctx, "update skipped, entry not found", "id", id)
		return nil, ErrNotFound
	}

	merged := patch.Apply(entries[i])
	entries[i] = merged

	if err := s.saveEntries(ctx, s.store, entries); err != nil {
		s.log.Error(ctx, "failed to update entry", "id", id, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "entry updated", "id", id)
	return &merged, nil
}

func (s *logService) DeleteEntry(ctx context.Context, id string) ([]models.MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return nil, err
	}

	remaining := make([]models.MaintenanceEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}

	if len(remaining) == len(entries) {
		s.log.Debug(ctx, "delete skipped, entry not found", "id", id)
		return remaining, nil
	}

	if err := s.saveEntries(ctx, s.store, remaining); err != nil {
		s.log.Error(ctx, "failed to delete entry", "id", id, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "entry deleted", "id", id)
	return remaining, nil
}
