package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes a header row of column names followed by one line per row. Each field is
// encoded on its own as a JSON value, so strings come out quoted and numbers bare. Fields are
// joined with "," and lines with "\n", with no trailing newline. This is not RFC 4180 quoting.
func WriteCSV(w io.Writer, ds Dataset) error {
	lines := make([]string, 0, len(ds.Rows)+1)
	lines = append(lines, strings.Join(ds.Columns, ","))

	fields := make([]string, len(ds.Columns))
	for i, row := range ds.Rows {
		for j, col := range ds.Columns {
			v, ok := row[col]
			if !ok {
				fields[j] = ""
				continue
			}
			b, err := encodeField(v)
			if err != nil {
				return fmt.Errorf("encoding row %d column %q: %w", i, col, err)
			}
			fields[j] = b
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// encodeField encodes v as JSON without escaping &, < and >.
func encodeField(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
