package export

import (
	"bytes"
	"fmt"
	"time"
)

// Format is a supported download format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Render writes the dataset in the given format into a named file.
// The name is "<base>_<YYYY-MM-DD>.<ext>".
func Render(ds Dataset, format Format, base string, now time.Time) (*File, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatCSV:
		err = WriteCSV(&buf, ds)
	case FormatJSON:
		err = WriteJSON(&buf, ds)
	case FormatXLSX:
		err = WriteXLSX(&buf, ds, "")
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s export: %w", format, err)
	}
	return &File{
		Name:        fmt.Sprintf("%s_%s.%s", base, now.Format(time.DateOnly), format),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}
