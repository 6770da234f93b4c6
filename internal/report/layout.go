// Package report renders the printable maintenance report.
package report

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/carcare/internal/filex"
	"github.com/dmitrijs2005/carcare/internal/i18n"
	"github.com/dmitrijs2005/carcare/internal/models"
	"github.com/shopspring/decimal"
)

// Page geometry in millimetres on A4.
const (
	marginX     = 20.0
	entryX      = 25.0
	pageBreakY  = 250.0
	topY        = 20.0
	historyY    = 80.0
	maxNotesLen = 80
)

// Data is everything the report shows.
type Data struct {
	CarName   string
	Generated time.Time
	Stats     models.Statistics
	Entries   []models.MaintenanceEntry
}

// Line is one positioned run of text.
type Line struct {
	X, Y float64
	Size float64
	Text string
}

// Page is the text placed on one report page.
type Page []Line

// Layout places the report text, starting a new page whenever the cursor
// passes the bottom limit before an entry.
func Layout(d Data) []Page {
	page := Page{
		{X: marginX, Y: 20, Size: 20, Text: d.CarName + " - Maintenance Report"},
		{X: marginX, Y: 30, Size: 12, Text: "Generated: " + d.Generated.Format("1/2/2006")},
		{X: marginX, Y: 45, Size: 12, Text: fmt.Sprintf("Total Entries: %d", d.Stats.TotalEntries)},
		{X: marginX, Y: 55, Size: 12, Text: "Total Cost: $" + d.Stats.TotalCost},
		{X: marginX, Y: 65, Size: 12, Text: "Last Service: " + d.Stats.LastService},
		{X: marginX, Y: historyY, Size: 14, Text: "Maintenance History:"},
	}
	var pages []Page

	y := historyY + 10
	for i, e := range d.Entries {
		if y > pageBreakY {
			pages = append(pages, page)
			page = Page{}
			y = topY
		}

		page = append(page, Line{X: entryX, Y: y, Size: 10, Text: headline(i+1, e)})
		y += 8

		if e.Description != "" {
			page = append(page, Line{X: entryX, Y: y, Size: 10, Text: "   " + e.Description})
			y += 6
		}
		if notes := models.Deref(e.Notes); notes != "" {
			page = append(page, Line{X: entryX, Y: y, Size: 10, Text: "   Notes: " + truncate(notes, maxNotesLen)})
			y += 6
		}
		y += 5
	}
	return append(pages, page)
}

// headline is "N. <Type> (<date>)" plus cost and mileage when known.
func headline(n int, e models.MaintenanceEntry) string {
	s := fmt.Sprintf("%d. %s (%s)", n, e.Type.DisplayName(), models.FormatDay(e.Date))
	if cost := models.ParseCost(e.Cost); e.Cost != nil && cost.GreaterThan(decimal.Zero) {
		s += " - $" + cost.StringFixed(2)
	}
	if m := models.Deref(e.Mileage); m != "" {
		s += " - " + i18n.FormatMileage(m)
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// FileName is <car>_maintenance_report.pdf.
func FileName(carName string) string {
	return filex.SafeName(carName) + "_maintenance_report.pdf"
}
