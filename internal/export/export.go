// Package export writes labeled tables as delimited text or spreadsheets.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"horizons/internal/table"
)

// Encoder serializes a table to a byte stream.
type Encoder interface {
	Encode(w io.Writer, t *table.LabeledTable) error
	ContentType() string
	Extension() string
}

// ForFormat picks an encoder by name: "csv", "xlsx" or "excel".
func ForFormat(format string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSV{}, nil
	case "xlsx", "excel":
		return XLSX{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ForPath picks an encoder from the file extension of path.
func ForPath(path string) (Encoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("cannot infer format of %q, use .csv or .xlsx", path)
	}
	return ForFormat(ext)
}

// WriteFile encodes t into path with the encoder matching its extension.
func WriteFile(path string, t *table.LabeledTable) error {
	enc, err := ForPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := enc.Encode(file, t); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
