package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carcare/internal/i18n"
	"github.com/dmitrijs2005/carcare/internal/models"
	"github.com/dmitrijs2005/carcare/internal/services"
)

// clearMark clears an optional field while editing.
const clearMark = "-"

func (a *App) Add(ctx context.Context, _ []string) error {
	a.println(a.heading(a.tr.T(i18n.AddEntry)))

	var f models.EntryFields
	var err error

	if f.Type, err = a.promptType(""); err != nil {
		return err
	}

	today := a.now().Format(models.DayLayout)
	if f.Date, err = a.promptDay("Date (YYYY-MM-DD, empty for "+today+")", today); err != nil {
		return err
	}

	for f.Description == "" {
		if f.Description, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
			return err
		}
	}

	if f.Mileage, err = GetOptional(a.reader, "Mileage (optional)", a.out); err != nil {
		return err
	}
	if f.Cost, err = GetOptional(a.reader, "Cost (optional)", a.out); err != nil {
		return err
	}

	due, err := a.promptDay("Next due date (YYYY-MM-DD, optional)", "")
	if err != nil {
		return err
	}
	if due != "" {
		f.NextDue = &due
	}

	notes, err := GetMultiline(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}
	if notes != "" {
		f.Notes = &notes
	}

	e, err := a.svc.AddEntry(ctx, f)
	if err != nil {
		return err
	}
	a.printf("Added entry %s\n", e.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter entry id to edit")
	if err != nil {
		return err
	}
	e, err := a.svc.FindByID(ctx, id)
	if err != nil {
		return a.entryError(err, id)
	}

	a.println("Press Enter to keep a value; enter '" + clearMark + "' to clear an optional one.")

	var p models.EntryPatch

	t, err := a.promptType(e.Type)
	if err != nil {
		return err
	}
	if t != e.Type {
		p.Type = &t
	}

	date, err := a.promptDay(fmt.Sprintf("Date [%s]", e.Date), e.Date)
	if err != nil {
		return err
	}
	if date != e.Date {
		p.Date = &date
	}

	desc, err := GetSimpleText(a.reader, fmt.Sprintf("Description [%s]", e.Description), a.out)
	if err != nil {
		return err
	}
	if desc != "" && desc != e.Description {
		p.Description = &desc
	}

	if p.Mileage, err = a.promptEdit("Mileage", e.Mileage); err != nil {
		return err
	}
	if p.Cost, err = a.promptEdit("Cost", e.Cost); err != nil {
		return err
	}
	if p.NextDue, err = a.promptEditDay("Next due date", e.NextDue); err != nil {
		return err
	}
	if p.Notes, err = a.promptEdit("Notes", e.Notes); err != nil {
		return err
	}

	if p.Empty() {
		a.println("Nothing changed.")
		return nil
	}

	if _, err := a.svc.UpdateEntry(ctx, id, p); err != nil {
		return a.entryError(err, id)
	}
	a.printf("Updated entry %s\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter entry id to delete")
	if err != nil {
		return err
	}
	e, err := a.svc.FindByID(ctx, id)
	if err != nil {
		return a.entryError(err, id)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q (%s)?", e.Description, models.FormatDay(e.Date)), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if _, err := a.svc.DeleteEntry(ctx, id); err != nil {
		return err
	}
	a.printf("Deleted entry %s\n", id)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter entry id to show")
	if err != nil {
		return err
	}
	e, err := a.svc.FindByID(ctx, id)
	if err != nil {
		return a.entryError(err, id)
	}
	for _, ln := range entryLines(*e, false) {
		a.println(ln)
	}
	return nil
}

func (a *App) idArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) entryError(err error, id string) error {
	if errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("entry %q not found", id)
	}
	return err
}

// promptType asks for a type by menu number, key or display name. With a
// current value an empty answer keeps it.
func (a *App) promptType(current models.MaintenanceType) (models.MaintenanceType, error) {
	types := models.MaintenanceTypes()
	var b strings.Builder
	b.WriteString("Type")
	if current != "" {
		fmt.Fprintf(&b, " [%s]", current.DisplayName())
	}
	for i, t := range types {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, t.DisplayName())
	}
	prompt := b.String()

	for {
		s, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if s == "" && current != "" {
			return current, nil
		}
		if t, ok := parseTypeInput(s, types); ok {
			return t, nil
		}
		a.println("Unknown type:", s)
	}
}

func parseTypeInput(s string, types []models.MaintenanceType) (models.MaintenanceType, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(types) {
			return types[n-1], true
		}
		return "", false
	}
	t, err := models.ParseMaintenanceType(s)
	if err != nil {
		return "", false
	}
	return t, true
}

// promptDay reads a date until it parses. An empty answer yields def.
func (a *App) promptDay(prompt, def string) (string, error) {
	for {
		s, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if s == "" {
			return def, nil
		}
		if _, err := models.ParseDay(s); err != nil {
			a.println("Invalid date, use YYYY-MM-DD:", s)
			continue
		}
		return s, nil
	}
}

func (a *App) promptEdit(label string, current *string) (models.Optional[string], error) {
	s, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, models.Deref(current)), a.out)
	if err != nil {
		return models.Keep[string](), err
	}
	return editValue(s, current), nil
}

func (a *App) promptEditDay(label string, current *string) (models.Optional[string], error) {
	for {
		o, err := a.promptEdit(label, current)
		if err != nil || !o.Set || o.Value == nil {
			return o, err
		}
		if _, err := models.ParseDay(*o.Value); err != nil {
			a.println("Invalid date, use YYYY-MM-DD:", *o.Value)
			continue
		}
		return o, nil
	}
}

// editValue maps an edit answer to a patch field: empty keeps, clearMark
// clears, anything else overwrites unless it equals the current value.
func editValue(s string, current *string) models.Optional[string] {
	switch {
	case s == "":
		return models.Keep[string]()
	case s == clearMark:
		if current == nil {
			return models.Keep[string]()
		}
		return models.Clear[string]()
	case current != nil && *current == s:
		return models.Keep[string]()
	}
	return models.Overwrite(s)
}
