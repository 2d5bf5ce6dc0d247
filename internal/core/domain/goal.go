package domain

import "github.com/shopspring/decimal"

// Goal is a monthly target amount for a category and kind (a "meta").
type Goal struct {
	GoalID       string          `json:"goalID"`
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Kind         EntryKind       `json:"kind"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	AuditFields
}
