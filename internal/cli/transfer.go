package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/carcare/internal/exchange"
	"github.com/dmitrijs2005/carcare/internal/filex"
	"github.com/dmitrijs2005/carcare/internal/i18n"
	"github.com/dmitrijs2005/carcare/internal/report"
)

// Export writes the export document to the configured export directory.
func (a *App) Export(ctx context.Context, _ []string) error {
	data, err := a.svc.ExportData(ctx)
	if err != nil {
		return err
	}
	name, err := a.svc.CarName(ctx)
	if err != nil {
		return err
	}

	path, err := exchange.WriteExport(a.config.ExportDir, exchange.ExportFileName(name, a.now()), data)
	if err != nil {
		a.log.Error(ctx, "export failed", "error", err)
		return err
	}
	a.printf("%s: %s\n", a.tr.T(i18n.ExportData), path)
	return nil
}

// Import restores a .car or .json document. The current data is replaced only
// when the whole document is accepted.
func (a *App) Import(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		var err error
		if path, err = GetSimpleText(a.reader, "Enter path to a .car or .json file", a.out); err != nil {
			return err
		}
	}

	data, err := exchange.ReadImportFile(ctx, path)
	if err != nil {
		if errors.Is(err, exchange.ErrUnsupportedFile) {
			a.println(exchange.UnsupportedFileMessage)
			return nil
		}
		return err
	}

	res := a.svc.ImportData(ctx, data)
	a.println(res.Message)
	if !res.Success {
		return nil
	}
	a.term, a.typeFilter = "", ""
	return a.refreshLanguage(ctx)
}

// PDF writes the printable report to the configured export directory.
func (a *App) PDF(ctx context.Context, _ []string) error {
	name, err := a.svc.CarName(ctx)
	if err != nil {
		return err
	}
	st, err := a.svc.GetStatistics(ctx)
	if err != nil {
		return err
	}
	entries, err := a.svc.ListEntries(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = report.Write(&buf, report.Data{
		CarName:   name,
		Generated: a.now(),
		Stats:     st,
		Entries:   entries,
	})
	if err != nil {
		return err
	}

	path, err := filex.WriteFile(a.config.ExportDir, report.FileName(name), buf.Bytes())
	if err != nil {
		a.log.Error(ctx, "report failed", "error", err)
		return err
	}
	a.printf("%s: %s\n", a.tr.T(i18n.ExportPDF), path)
	return nil
}

// Clear deletes every stored key after confirmation and starts over with the
// welcome screen.
func (a *App) Clear(ctx context.Context, _ []string) error {
	ok, err := Confirm(a.reader, "Delete all maintenance data and settings?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if err := a.svc.ClearAllData(ctx); err != nil {
		return err
	}
	a.term, a.typeFilter = "", ""
	if err := a.refreshLanguage(ctx); err != nil {
		return err
	}
	a.println("All data cleared.")
	return a.welcome(ctx)
}
