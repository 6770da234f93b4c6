// Package exchange is the file boundary of export and import: it names
// export files, checks import file types and moves document bytes between
// disk and the log store.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/carcare/internal/common"
	"github.com/dmitrijs2005/carcare/internal/filex"
)

// ErrUnsupportedFile is returned for import files that are not .car or .json.
var ErrUnsupportedFile = common.ErrUnsupportedFile

// UnsupportedFileMessage is shown to the user when ValidateImportFile fails.
const UnsupportedFileMessage = "Please select a valid file (.car or .json)"

// ExportExt is the extension of files written by export.
const ExportExt = ".car"

// MaxImportSize is the largest import file ReadImportFile accepts.
const MaxImportSize = 32 << 20

// ErrFileTooLarge is returned for import files over the size limit.
var ErrFileTooLarge = errors.New("import file is too large")

// importLimit is a test seam for MaxImportSize.
var importLimit int64 = MaxImportSize

var importExts = map[string]struct{}{
	".car":  {},
	".json": {},
}

// ValidateImportFile checks the extension of name: the text from the last
// '.' on, case-insensitively, must be .car or .json.
func ValidateImportFile(name string) error {
	base := filepath.Base(name)
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, base)
	}
	if _, ok := importExts[strings.ToLower(base[i:])]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, base)
	}
	return nil
}

// ReadImportFile validates path and reads it whole. Callers only ever see
// the complete contents or an error; files over MaxImportSize are rejected.
func ReadImportFile(ctx context.Context, path string) ([]byte, error) {
	if err := ValidateImportFile(path); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, importLimit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	if int64(len(data)) > importLimit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, importLimit)
	}
	return data, nil
}

// ExportFileName is <car>_maintenance_<YYYY-MM-DD>.car with the car name
// reduced to lower-case [a-z0-9_].
func ExportFileName(carName string, now time.Time) string {
	return filex.SafeName(carName) + "_maintenance_" + now.UTC().Format("2006-01-02") + ExportExt
}

// WriteExport stores an export document under dir and returns its path.
func WriteExport(dir, name string, data []byte) (string, error) {
	path, err := filex.WriteFile(dir, name, data)
	if err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
