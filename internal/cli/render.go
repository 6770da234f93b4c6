package cli

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/carcare/internal/i18n"
	"github.com/dmitrijs2005/carcare/internal/models"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minWidth     = 40
)

// termWidth is a test seam for the terminal width. Output that is not a
// terminal is treated as defaultWidth columns wide.
var termWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < minWidth {
		return defaultWidth
	}
	return w
}

// entryLines renders e. In compact form the description and notes are cut to
// the terminal width.
func entryLines(e models.MaintenanceEntry, compact bool) []string {
	width := termWidth()
	fit := func(s string, indent int) string {
		if !compact {
			return s
		}
		return clip(s, width-indent)
	}

	lines := []string{
		e.ID + "  " + e.Type.DisplayName() + "  " + models.FormatDay(e.Date),
		"  " + fit(e.Description, 2),
	}

	var details []string
	if m := models.Deref(e.Mileage); m != "" {
		details = append(details, "Mileage: "+i18n.FormatMileage(m))
	}
	if c := models.Deref(e.Cost); c != "" {
		details = append(details, "Cost: $"+models.ParseCost(e.Cost).StringFixed(2))
	}
	if d := models.Deref(e.NextDue); d != "" {
		details = append(details, "Next due: "+models.FormatDay(d))
	}
	if len(details) > 0 {
		lines = append(lines, "  "+strings.Join(details, " | "))
	}

	if n := models.Deref(e.Notes); n != "" {
		if compact {
			n = strings.ReplaceAll(n, "\n", " ")
		}
		lines = append(lines, "  Notes: "+fit(n, 9))
	}
	return lines
}

func clip(s string, n int) string {
	if n <= 3 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func (a *App) printEntries(entries []models.MaintenanceEntry) {
	rule := strings.Repeat("-", min(termWidth(), defaultWidth))
	for i, e := range entries {
		if i > 0 {
			a.println(rule)
		}
		for _, ln := range entryLines(e, true) {
			a.println(ln)
		}
	}
}
