package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carcare/internal/i18n"
	"github.com/dmitrijs2005/carcare/internal/models"
)

// List prints the entries that match the current search term and filter.
func (a *App) List(ctx context.Context, _ []string) error {
	entries, err := a.svc.Search(ctx, a.term, string(a.typeFilter))
	if err != nil {
		return err
	}

	header := a.tr.T(i18n.MaintenanceHistory)
	if a.term != "" {
		header += fmt.Sprintf(" [search: %q]", a.term)
	}
	if a.typeFilter != "" {
		header += " [" + a.typeFilter.DisplayName() + "]"
	}
	a.println(a.heading(fmt.Sprintf("%s (%d)", header, len(entries))))

	if len(entries) == 0 {
		if a.term == "" && a.typeFilter == "" {
			a.println(a.tr.T(i18n.NoRecords))
			a.printf("%s: type 'add'\n", a.tr.T(i18n.AddFirstEntry))
		}
		return nil
	}
	a.printEntries(entries)
	return nil
}

// Search sets the search term from args, or clears it, and lists.
func (a *App) Search(ctx context.Context, args []string) error {
	a.term = strings.Join(args, " ")
	return a.List(ctx, nil)
}

// Filter sets the category filter and lists. "all" or no argument shows every
// category.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.EqualFold(args[0], "all") {
		a.typeFilter = ""
		a.println(a.tr.T(i18n.AllCategories))
		return a.List(ctx, nil)
	}

	t, ok := parseTypeInput(strings.Join(args, " "), models.MaintenanceTypes())
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrUnknownType, strings.Join(args, " "))
	}
	a.typeFilter = t
	return a.List(ctx, nil)
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	st, err := a.svc.GetStatistics(ctx)
	if err != nil {
		return err
	}

	a.printf("%s: %d\n", a.tr.T(i18n.TotalEntries), st.TotalEntries)
	a.printf("%s: $%s\n", a.tr.T(i18n.TotalCost), st.TotalCost)
	a.printf("%s: %s\n", a.tr.T(i18n.LastService), st.LastService)
	return nil
}

func (a *App) Upcoming(ctx context.Context, _ []string) error {
	entries, err := a.svc.Upcoming(ctx)
	if err != nil {
		return err
	}
	a.printDue(a.tr.T(i18n.UpcomingTitle), entries)
	return nil
}

func (a *App) Overdue(ctx context.Context, _ []string) error {
	entries, err := a.svc.Overdue(ctx)
	if err != nil {
		return err
	}
	a.printDue(a.tr.T(i18n.OverdueTitle), entries)
	return nil
}

func (a *App) printDue(title string, entries []models.MaintenanceEntry) {
	a.println(a.heading(fmt.Sprintf("%s (%d)", title, len(entries))))
	for _, e := range entries {
		a.printf("  %s  %s  %s - %s\n",
			models.FormatDay(models.Deref(e.NextDue)), e.ID, e.Type.DisplayName(), e.Description)
	}
}
