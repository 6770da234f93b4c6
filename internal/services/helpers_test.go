package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/carcare/internal/kv"
	"github.com/dmitrijs2005/carcare/internal/models"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newService(t *testing.T, opts ...Option) (LogService, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	base := []Option{WithClock(func() time.Time { return fixedNow }), WithIDGenerator(seqIDs())}
	return NewLogService(store, append(base, opts...)...), store
}

func mustAdd(t *testing.T, s LogService, f models.EntryFields) *models.MaintenanceEntry {
	t.Helper()
	e, err := s.AddEntry(context.Background(), f)
	require.NoError(t, err)
	return e
}

func oil(desc string) models.EntryFields {
	return models.EntryFields{Type: models.TypeOilChange, Date: "2025-01-10", Description: desc}
}
