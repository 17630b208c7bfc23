package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

var ErrUnsupportedFormat = httperr.ErrBusiness("unsupported_file_format")

// FormatOf picks the format from a file name's extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	}
	return "", ErrUnsupportedFormat
}

// ReadRows reads the first worksheet of an xlsx workbook, or a whole csv
// file, as rows of trimmed cells.
func ReadRows(r io.Reader, format Format) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch format {
	case FormatXLSX:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows, err = file.GetRows(sheetName)
		if err != nil {
			return nil, err
		}

	case FormatCSV:
		cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		rows, err = cr.ReadAll()
		if err != nil {
			return nil, err
		}

	default:
		return nil, ErrUnsupportedFormat
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}

// ======================================================
// Header lookup
// ======================================================

// header maps normalised column names to their index.
type header struct {
	names []string
}

func newHeader(row []string) header {
	h := header{names: make([]string, len(row))}
	for i, name := range row {
		h.names[i] = normalizeHeader(name)
	}
	return h
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), " ")
}

// index returns the first column named exactly like one of the aliases, or
// -1.
func (h header) index(aliases ...string) int {
	for _, a := range aliases {
		for i, n := range h.names {
			if n == a {
				return i
			}
		}
	}
	return -1
}

// containing returns the first column whose name contains word and none of
// the excluded words, or -1.
func (h header) containing(word string, exclude ...string) int {
next:
	for i, n := range h.names {
		if !strings.Contains(n, word) {
			continue
		}
		for _, x := range exclude {
			if strings.Contains(n, x) {
				continue next
			}
		}
		return i
	}
	return -1
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
