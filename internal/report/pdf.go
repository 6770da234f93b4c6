package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const font = "Helvetica"

// Write renders d as a PDF document to w.
func Write(w io.Writer, d Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(d.CarName+" - Maintenance Report", true)
	pdf.SetCreator("carcare", false)
	pdf.SetCreationDate(d.Generated)
	pdf.SetModificationDate(d.Generated)
	pdf.SetCatalogSort(true)
	pdf.SetFont(font, "", 12)

	// Core fonts are cp1252; characters outside it are replaced.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range Layout(d) {
		pdf.AddPage()
		for _, ln := range page {
			pdf.SetFontSize(ln.Size)
			pdf.Text(ln.X, ln.Y, tr(ln.Text))
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
