package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies an entry as money coming in or going out.
type EntryKind string

const (
	Inflow  EntryKind = "entrada"
	Outflow EntryKind = "saida"
)

// IsValid reports whether k is one of the two known kinds.
func (k EntryKind) IsValid() bool {
	return k == Inflow || k == Outflow
}

// EntryStatus is the payment status of an entry.
type EntryStatus string

const (
	StatusPaid     EntryStatus = "pago"
	StatusPending  EntryStatus = "pendente"
	StatusCanceled EntryStatus = "cancelado"
)

// IsValid reports whether s is a known status.
func (s EntryStatus) IsValid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusCanceled:
		return true
	}
	return false
}

// Entry is a single recorded inflow or outflow (a "lançamento").
// Month and Year are derived from Date when the entry is created.
// Entries are immutable once persisted.
type Entry struct {
	EntryID         string          `json:"entryID"`
	Date            time.Time       `json:"date"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Kind            EntryKind       `json:"kind"`
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName"`
	ResponsibleID   string          `json:"responsibleID"`
	ResponsibleName string          `json:"responsibleName"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"` // Always positive
	Status          EntryStatus     `json:"status"`
	TagID           *string         `json:"tagID,omitempty"`
	TagName         string          `json:"tagName,omitempty"`
	AuditFields
}

// SignedAmount returns the amount with inflows positive and outflows negative.
func (e Entry) SignedAmount() decimal.Decimal {
	if e.Kind == Inflow {
		return e.Amount
	}
	return e.Amount.Neg()
}
