package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZerologLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	log.With("component", "logstore").Warn(context.Background(), "import failed", "error", errors.New("bad json"), "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "import failed", rec["message"])
	assert.Equal(t, "logstore", rec["component"])
	assert.Equal(t, "bad json", rec["error"])
	assert.EqualValues(t, 3, rec["n"])
}

func TestZapLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	log := NewZapLogger(zap.New(zapcore.NewCore(enc, zapcore.AddSync(&buf), zapcore.DebugLevel)))

	log.With("component", "logstore").Info(context.Background(), "entry added", "id", "e1")
	require.NoError(t, log.Sync())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "entry added", rec["msg"])
	assert.Equal(t, "logstore", rec["component"])
	assert.Equal(t, "e1", rec["id"])
}

func TestFields_DanglingValue(t *testing.T) {
	m := fields([]any{"a", 1, "orphan"})
	assert.Equal(t, 1, m["a"])
	assert.Equal(t, "orphan", m["!BADKEY"])
}

func TestNew_Backends(t *testing.T) {
	for _, backend := range []string{"", BackendSlog, BackendZerolog, BackendZap} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			log, closer, err := New(Options{Backend: backend, Format: FormatJSON, Level: "info", Out: &buf})
			require.NoError(t, err)
			defer closer.Close()

			log.Debug(context.Background(), "hidden")
			log.Info(context.Background(), "shown", "k", "v")
			if z, ok := log.(*ZapLogger); ok {
				_ = z.Sync()
			}

			out := buf.String()
			assert.NotContains(t, out, "hidden")
			assert.Contains(t, out, "shown")
			assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
		})
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Backend: BackendSlog, Format: FormatText, Level: "debug", Out: &buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "dbg")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "carcare.log")
	log, closer, err := New(Options{Backend: BackendZerolog, Format: FormatJSON, File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info(context.Background(), "to file")
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New(Options{Backend: "logrus"})
	require.ErrorIs(t, err, ErrUnknownBackend)

	_, _, err = New(Options{Level: "loud"})
	require.ErrorIs(t, err, ErrUnknownLevel)
}
