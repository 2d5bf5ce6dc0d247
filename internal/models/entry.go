package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a row of the entries table joined with the names of its references.
type Entry struct {
	EntryID         string          `db:"entry_id"`
	EntryDate       time.Time       `db:"entry_date"`
	Month           int16           `db:"month"`
	Year            int16           `db:"year"`
	Kind            string          `db:"kind"`
	CategoryID      string          `db:"category_id"`
	CategoryName    string          `db:"category_name"`
	ResponsibleID   string          `db:"responsible_id"`
	ResponsibleName string          `db:"responsible_name"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	Status          string          `db:"status"`
	TagID           sql.NullString  `db:"tag_id"`
	TagName         sql.NullString  `db:"tag_name"`
	AuditFields
}
