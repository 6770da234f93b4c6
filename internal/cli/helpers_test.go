package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/carcare/internal/config"
	"github.com/dmitrijs2005/carcare/internal/kv"
	"github.com/dmitrijs2005/carcare/internal/models"
	"github.com/dmitrijs2005/carcare/internal/services"
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

// newTestApp wires an App over an in-memory store with scripted input.
func newTestApp(t *testing.T, input string) (*App, services.LogService, *bytes.Buffer) {
	t.Helper()

	oldWidth := termWidth
	termWidth = func() int { return defaultWidth }
	t.Cleanup(func() { termWidth = oldWidth })

	svc := services.NewLogService(kv.NewMemoryStore(),
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(seqIDs()),
	)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ExportDir = t.TempDir()

	var out bytes.Buffer
	app := NewApp(cfg, svc, nil,
		WithInput(strings.NewReader(input)),
		WithOutput(&out),
		WithClock(func() time.Time { return fixedNow }),
		WithEnv(func(string) string { return "" }),
	)
	return app, svc, &out
}

func mustAdd(t *testing.T, s services.LogService, f models.EntryFields) *models.MaintenanceEntry {
	t.Helper()
	e, err := s.AddEntry(context.Background(), f)
	require.NoError(t, err)
	return e
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
