package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/carcare/internal/kv"
	"github.com/dmitrijs2005/carcare/internal/models"
)

// ExportData renders the profile and the full collection as an indented
// export document.
func (s *logService) ExportData(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := s.carName(ctx, s.store)
	if err != nil {
		return nil, err
	}
	theme, err := s.theme(ctx, s.store)
	if err != nil {
		return nil, err
	}
	entries, err := s.loadEntries(ctx, s.store)
	if err != nil {
		return nil, err
	}

	doc := models.ExportDocument{
		CarName:         name,
		Theme:           theme,
		MaintenanceLogs: entries,
		ExportDate:      s.now().UTC(),
		Version:         models.ExportVersion,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}

	s.log.Info(ctx, "data exported", "entries", len(entries))
	return out, nil
}

// ImportData replaces the stored state with the contents of an export
// document. Nothing is written unless the whole document is acceptable.
func (s *logService) ImportData(ctx context.Context, data []byte) models.ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.importDocument(ctx, data)
	if err != nil {
		s.log.Warn(ctx, "import failed", "error", err)
		return models.ImportResult{
			Success: false,
			Message: importFailedMessage(err),
			Err:     err,
		}
	}

	s.log.Info(ctx, "data imported", "entries", n)
	return models.ImportResult{
		Success: true,
		Count:   n,
		Message: importedMessage(n),
	}
}

// importPlan is everything an import will write, decided before the first
// write happens.
type importPlan struct {
	carName *string
	theme   *models.Theme
	entries []models.MaintenanceEntry
	replace bool
}

func (s *logService) importDocument(ctx context.Context, data []byte) (int, error) {
	plan, err := s.planImport(ctx, data)
	if err != nil {
		return 0, err
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, r kv.Repository) error {
		if plan.carName != nil {
			if err := r.Set(ctx, KeyCarName, []byte(*plan.carName)); err != nil {
				return fmt.Errorf("failed to save car name: %w", err)
			}
		}
		if plan.theme != nil {
			if err := r.Set(ctx, KeyTheme, []byte(*plan.theme)); err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}
		}
		if plan.replace {
			return s.saveEntries(ctx, r, plan.entries)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(plan.entries), nil
}

func (s *logService) planImport(ctx context.Context, data []byte) (importPlan, error) {
	var plan importPlan

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		if json.Valid(data) {
			// Well-formed JSON that is not an object has no version.
			return plan, ErrInvalidFormat
		}
		return plan, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if !truthy(doc["version"]) || !truthy(doc["maintenanceLogs"]) {
		return plan, ErrInvalidFormat
	}

	var name string
	if raw, ok := doc["carName"]; ok && json.Unmarshal(raw, &name) == nil && name != "" {
		plan.carName = &name
	}

	var themeText string
	if raw, ok := doc["theme"]; ok && json.Unmarshal(raw, &themeText) == nil && themeText != "" {
		if theme, err := models.ParseTheme(themeText); err == nil {
			plan.theme = &theme
		} else {
			s.log.Warn(ctx, "ignoring unknown theme in import", "theme", themeText)
		}
	}

	logs := bytes.TrimSpace(doc["maintenanceLogs"])
	if len(logs) > 0 && logs[0] == '[' {
		var entries []models.MaintenanceEntry
		if err := json.Unmarshal(logs, &entries); err != nil {
			return plan, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		plan.entries = s.normalizeImported(ctx, entries)
		plan.replace = true
	}

	return plan, nil
}

// normalizeImported gives entries with a missing or repeated id a fresh one
// so ids stay unique after the collection is replaced.
func (s *logService) normalizeImported(ctx context.Context, entries []models.MaintenanceEntry) []models.MaintenanceEntry {
	if entries == nil {
		return []models.MaintenanceEntry{}
	}

	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		id := entries[i].ID
		if _, dup := seen[id]; id == "" || dup {
			fresh, err := s.uniqueID(idSet(entries))
			if err == nil {
				s.log.Warn(ctx, "imported entry reassigned id", "old_id", id, "id", fresh)
				entries[i].ID = fresh
				id = fresh
			}
		}
		seen[id] = struct{}{}
	}
	return entries
}

// truthy mirrors the loose truth test the export format was designed
// around: absent, null, false, 0 and "" are all false.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// ClearAllData removes every persisted key, returning the logbook to its
// first-run state.
func (s *logService) ClearAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.WithinTx(ctx, func(ctx context.Context, r kv.Repository) error {
		for _, key := range AllKeys {
			if err := r.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "failed to clear data", "error", err)
		return fmt.Errorf("failed to clear data: %w", err)
	}

	s.log.Info(ctx, "all data cleared")
	return nil
}
