package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestRead_CSV(t *testing.T) {
	t.Run("Header lower-cased and trimmed", func(t *testing.T) {
		data := []byte(" Email , ROLE \na@x.com,user\n")
		header, rows, err := Read(data, "roster.csv")
		assert.NoError(t, err)
		assert.Equal(t, []string{"email", "role"}, header)
		assert.Len(t, rows, 1)
		assert.Equal(t, "a@x.com", rows[0].Values["email"])
		assert.Equal(t, "user", rows[0].Values["role"])
	})

	t.Run("Line numbers count the header as line 1", func(t *testing.T) {
		data := []byte("email\na@x.com\nb@x.com\n")
		_, rows, err := Read(data, "roster.csv")
		assert.NoError(t, err)
		assert.Equal(t, 2, rows[0].Line)
		assert.Equal(t, 3, rows[1].Line)
	})

	t.Run("Rows without email dropped silently", func(t *testing.T) {
		data := []byte("email,full_name\na@x.com,Ana\n,Ghost\nb@x.com,Bo\n")
		_, rows, err := Read(data, "roster.csv")
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "a@x.com", rows[0].Values["email"])
		assert.Equal(t, "b@x.com", rows[1].Values["email"])
		// Line numbers still reflect the original file.
		assert.Equal(t, 4, rows[1].Line)
	})

	t.Run("Rows kept when header has no email column", func(t *testing.T) {
		// The validator owns the missing-required-column failure; the
		// reader must not silently drop everything before it runs.
		data := []byte("full_name\nAna\n")
		_, rows, err := Read(data, "roster.csv")
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("Blank rows skipped", func(t *testing.T) {
		data := []byte("email\na@x.com\n\n   \nb@x.com\n")
		_, rows, err := Read(data, "roster.csv")
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("Ragged rows tolerated", func(t *testing.T) {
		data := []byte("email,role,division\na@x.com,user\n")
		_, rows, err := Read(data, "roster.csv")
		assert.NoError(t, err)
		assert.Equal(t, "user", rows[0].Values["role"])
		_, ok := rows[0].Values["division"]
		assert.False(t, ok)
	})
}

func TestRead_FileLevelErrors(t *testing.T) {
	t.Run("Unsupported extension", func(t *testing.T) {
		_, _, err := Read([]byte("email\na@x.com\n"), "roster.pdf")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("Empty file", func(t *testing.T) {
		_, _, err := Read([]byte(""), "roster.csv")
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("Header only", func(t *testing.T) {
		_, _, err := Read([]byte("email,role\n"), "roster.csv")
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("All rows missing email", func(t *testing.T) {
		_, _, err := Read([]byte("email,full_name\n,Ana\n,Bo\n"), "roster.csv")
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}

func TestRead_Workbook(t *testing.T) {
	buildWorkbook := func(t *testing.T, rows ...[]interface{}) []byte {
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			assert.NoError(t, err)
			assert.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
		var buf bytes.Buffer
		assert.NoError(t, f.Write(&buf))
		return buf.Bytes()
	}

	t.Run("First sheet parsed like CSV", func(t *testing.T) {
		data := buildWorkbook(t,
			[]interface{}{"Email", "Role"},
			[]interface{}{"a@x.com", "admin"},
			[]interface{}{"", "user"},
		)
		header, rows, err := Read(data, "roster.xlsx")
		assert.NoError(t, err)
		assert.Equal(t, []string{"email", "role"}, header)
		assert.Len(t, rows, 1)
		assert.Equal(t, "admin", rows[0].Values["role"])
	})

	t.Run("Only the first sheet is read", func(t *testing.T) {
		f := excelize.NewFile()
		first := f.GetSheetName(0)
		row1 := []interface{}{"email"}
		row2 := []interface{}{"a@x.com"}
		assert.NoError(t, f.SetSheetRow(first, "A1", &row1))
		assert.NoError(t, f.SetSheetRow(first, "A2", &row2))
		_, err := f.NewSheet("Extra")
		assert.NoError(t, err)
		other := []interface{}{"b@x.com"}
		assert.NoError(t, f.SetSheetRow("Extra", "A1", &other))
		var buf bytes.Buffer
		assert.NoError(t, f.Write(&buf))

		_, rows, err := Read(buf.Bytes(), "roster.xlsx")
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "a@x.com", rows[0].Values["email"])
	})

	t.Run("Corrupt workbook", func(t *testing.T) {
		_, _, err := Read([]byte("definitely not a zip"), "roster.xlsx")
		assert.Error(t, err)
	})
}
