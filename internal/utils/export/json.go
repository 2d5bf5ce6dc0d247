package export

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the rows as a JSON array indented with two spaces.
func WriteJSON(w io.Writer, ds Dataset) error {
	rows := ds.Rows
	if rows == nil {
		rows = []map[string]any{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}
