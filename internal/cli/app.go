package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/carcare/internal/config"
	"github.com/dmitrijs2005/carcare/internal/i18n"
	"github.com/dmitrijs2005/carcare/internal/logging"
	"github.com/dmitrijs2005/carcare/internal/models"
	"github.com/dmitrijs2005/carcare/internal/services"
)

type App struct {
	config *config.Config
	svc    services.LogService
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	tr     i18n.Translator
	now    func() time.Time
	getenv func(string) string

	// list state, as set by search and filter
	term       string
	typeFilter models.MaintenanceType
}

// Option customizes an App.
type Option func(*App)

func WithInput(r io.Reader) Option {
	return func(a *App) { a.reader = bufio.NewReader(r) }
}

func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithEnv replaces os.Getenv for locale detection.
func WithEnv(getenv func(string) string) Option {
	return func(a *App) { a.getenv = getenv }
}

func NewApp(c *config.Config, svc services.LogService, log logging.Logger, opts ...Option) *App {
	a := &App{
		config: c,
		svc:    svc,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logging.NewNopLogger()
	}
	a.tr = i18n.New(models.LanguageSystem, a.getenv)
	return a
}

// Run shows the welcome screen on first use, prints the startup reminder
// and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) error {
	if err := a.refreshLanguage(ctx); err != nil {
		return err
	}

	first, err := a.svc.IsFirstTime(ctx)
	if err != nil {
		return err
	}
	if first {
		if err := a.welcome(ctx); err != nil {
			return err
		}
	}

	a.println(a.tr.T(i18n.AppTitle) + " (type 'help' for commands)")
	a.remind(ctx)

	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader, a.out)
	return nil
}

// welcome asks for the car name until a non-empty one is given.
func (a *App) welcome(ctx context.Context) error {
	a.println(a.heading(a.tr.T(i18n.WelcomeTitle)))
	a.println(a.tr.T(i18n.WelcomeSubtitle))

	for {
		name, err := GetSimpleText(a.reader, a.tr.T(i18n.CarNamePlaceholder), a.out)
		if err != nil {
			return err
		}
		if name == "" {
			continue
		}
		if err := a.svc.SetCarName(ctx, name); err != nil {
			return err
		}
		break
	}

	if err := a.svc.CompleteFirstRun(ctx); err != nil {
		return err
	}
	a.println(a.tr.T(i18n.GetStarted) + "!")
	return nil
}

func (a *App) remind(ctx context.Context) {
	r, ok, err := a.svc.Reminder(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to compute reminder", "error", err)
		return
	}
	if !ok {
		return
	}
	mark := "[i]"
	if r.Level == models.ReminderOverdue {
		mark = "[!]"
	}
	a.println(mark + " " + r.Message)
}

func (a *App) refreshLanguage(ctx context.Context) error {
	lang, err := a.svc.Language(ctx)
	if err != nil {
		return err
	}
	a.tr = i18n.New(lang, a.getenv)
	return nil
}

func (a *App) status(ctx context.Context) string {
	name, err := a.svc.CarName(ctx)
	if err != nil {
		return ""
	}
	return name
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// heading marks right-to-left text so terminals lay it out correctly.
func (a *App) heading(s string) string {
	if a.tr.RTL() {
		return "\u200f" + s
	}
	return s
}
