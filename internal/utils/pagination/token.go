package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const (
	timeFormat = time.RFC3339Nano
	dateFormat = time.DateOnly
	separator  = "|"
)

// Cursor identifies the last item of a page in a (date, created_at, id) descending ordering.
type Cursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}

// EncodeCursor creates an opaque URL-safe token from a cursor.
func EncodeCursor(c Cursor) string {
	tokenStr := strings.Join([]string{
		c.Date.Format(dateFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.ID,
	}, separator)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decoded), separator, 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return Cursor{Date: date, CreatedAt: createdAt, ID: parts[2]}, nil
}
