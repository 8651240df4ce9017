// Package export serializes tenant tables to CSV and carries the
// hand-maintained SQL schema shown on the export screen.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// BOM is written before the header so spreadsheet tools detect UTF-8.
const BOM = "\ufeff"

// Writer writes CSV records prefixed by a UTF-8 byte order mark.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
	w           io.Writer
}

// NewWriter creates a Writer on w. Nothing is written until the header.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w), w: w}
}

// WriteHeader writes the BOM followed by the column names.
func (w *Writer) WriteHeader(columns []string) error {
	if w.wroteHeader {
		return fmt.Errorf("export: header already written")
	}
	if _, err := io.WriteString(w.w, BOM); err != nil {
		return err
	}
	w.wroteHeader = true
	return w.csv.Write(columns)
}

// WriteRow writes one record. Fields containing a comma, a quote or a line
// break are quoted with inner quotes doubled.
func (w *Writer) WriteRow(fields []string) error {
	if !w.wroteHeader {
		return fmt.Errorf("export: header not written")
	}
	return w.csv.Write(fields)
}

// Flush writes buffered records and reports any write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// FormatValue renders a scanned column value as a CSV field.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
