package batch

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	perr "promptcorrector/internal/platform/errors"
)

// Format is a supported upload file type
type Format string

// Formats
const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// FormatOf picks the format from a file name extension
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	}
	return "", perr.Newf(perr.ErrorCodeValidation, "unsupported file type %q, want .csv or .xlsx", filepath.Ext(name))
}

// Read parses a header-less table from r in the format implied by name
func Read(name string, r io.Reader) ([][]string, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	if f == XLSX {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads every record; ragged rows are kept so validation can report them
func ReadCSV(r io.Reader) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "read csv")
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(b))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeValidation, "malformed csv")
		}
		rows = append(rows, trimTrailingEmpty(rec))
	}
	return rows, nil
}

// ReadXLSX reads the first sheet of a workbook
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "malformed xlsx")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, perr.New(perr.ErrorCodeValidation, "xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "read xlsx rows")
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, trimTrailingEmpty(row))
	}
	// trailing blank rows are layout, not data
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

// trimTrailingEmpty drops blank cells after the last non-blank one, so
// "text," counts as a single column
func trimTrailingEmpty(row []string) []string {
	n := len(row)
	for n > 0 && strings.TrimSpace(row[n-1]) == "" {
		n--
	}
	return row[:n]
}
