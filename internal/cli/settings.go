package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/carcare/internal/models"
)

func (a *App) Name(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		current, err := a.svc.CarName(ctx)
		if err != nil {
			return err
		}
		if name, err = GetSimpleText(a.reader, "Car name ["+current+"]", a.out); err != nil {
			return err
		}
		if name == "" {
			return nil
		}
	}
	if err := a.svc.SetCarName(ctx, name); err != nil {
		return err
	}
	a.println("Car name set to", name)
	return nil
}

// Theme prints the stored theme, or stores a new one.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		t, err := a.svc.Theme(ctx)
		if err != nil {
			return err
		}
		a.println("Theme:", t)
		return nil
	}

	t, err := models.ParseTheme(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	if err := a.svc.SetTheme(ctx, t); err != nil {
		return err
	}
	a.println("Theme:", t)
	return nil
}

// Lang prints the stored language, or stores a new one and switches the
// interface to it.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		l, err := a.svc.Language(ctx)
		if err != nil {
			return err
		}
		a.printf("Language: %s (%s)\n", l, a.tr.Language())
		return nil
	}

	l, err := models.ParseLanguage(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	if err := a.svc.SetLanguage(ctx, l); err != nil {
		return err
	}
	if err := a.refreshLanguage(ctx); err != nil {
		return err
	}
	a.printf("Language: %s (%s)\n", l, a.tr.Language())
	return nil
}
