package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"
	BackendZap     = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrUnknownBackend = errors.New("unknown log backend")
	ErrUnknownLevel   = errors.New("unknown log level")
)

// Options selects the backend, encoding, level and destination of a logger.
// An empty File means Out (stderr when Out is nil).
type Options struct {
	Backend string
	Format  string
	Level   string

	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	Out io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a Logger. The returned Closer releases the log file, if any.
func New(opts Options) (Logger, io.Closer, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if opts.Out != nil {
		out = opts.Out
	}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		out, closer = lj, lj
	}

	asJSON := strings.EqualFold(opts.Format, FormatJSON)

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		hopts := &slog.HandlerOptions{Level: level}
		var h slog.Handler = slog.NewTextHandler(out, hopts)
		if asJSON {
			h = slog.NewJSONHandler(out, hopts)
		}
		return NewSlogLogger(slog.New(h)), closer, nil

	case BackendZerolog:
		w := out
		if !asJSON {
			w = zerolog.ConsoleWriter{Out: out, NoColor: opts.File != ""}
		}
		zl := zerolog.New(w).Level(zerologLevel(level)).With().Timestamp().Logger()
		return NewZerologLogger(zl), closer, nil

	case BackendZap:
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc := zapcore.NewConsoleEncoder(encCfg)
		if asJSON {
			enc = zapcore.NewJSONEncoder(encCfg)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(out), zapLevel(level))
		return NewZapLogger(zap.New(core)), closer, nil
	}

	_ = closer.Close()
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l <= slog.LevelDebug:
		return zerolog.DebugLevel
	case l <= slog.LevelInfo:
		return zerolog.InfoLevel
	case l <= slog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
