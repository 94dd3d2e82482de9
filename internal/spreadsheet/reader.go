package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"rosterhub-backend/internal/domain"
)

var (
	// ErrUnsupportedFormat means the file extension matches neither
	// supported format.
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .csv or .xlsx")

	// ErrEmptyFile means parsing produced zero usable data rows.
	ErrEmptyFile = errors.New("file contains no data rows")
)

// Read parses an uploaded spreadsheet into raw rows, using the first row as
// the header. Column names are lower-cased and trimmed. When the header has
// an email column, rows with an empty email cell are dropped; they cannot be
// validated further. For workbooks only the first sheet is read.
func Read(data []byte, filename string) (header []string, rows []domain.RawRow, err error) {
	var records [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = parseCSV(data)
	case ".xlsx":
		records, err = parseWorkbook(data)
	default:
		return nil, nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, ErrEmptyFile
	}

	header = make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}
	hasEmail := false
	for _, name := range header {
		if name == "email" {
			hasEmail = true
			break
		}
	}

	for i, record := range records[1:] {
		if isEmptyRow(record) {
			continue
		}
		values := make(map[string]string, len(header))
		for col, name := range header {
			if name == "" || col >= len(record) {
				continue
			}
			values[name] = strings.TrimSpace(record[col])
		}
		if hasEmail && values["email"] == "" {
			continue
		}
		rows = append(rows, domain.RawRow{
			Line:   i + 2, // 1-based, header is line 1
			Values: values,
		})
	}

	if len(rows) == 0 {
		return nil, nil, ErrEmptyFile
	}
	return header, rows, nil
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(sanitizeUTF8(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}

func parseWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook sheet: %w", err)
	}
	return rows, nil
}

func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}
	return buf.Bytes()
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
