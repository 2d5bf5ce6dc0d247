package models

import "github.com/shopspring/decimal"

// Goal is a row of the goals table joined with its category name.
type Goal struct {
	GoalID       string          `db:"goal_id"`
	CategoryID   string          `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Kind         string          `db:"kind"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	Month        int16           `db:"month"`
	Year         int16           `db:"year"`
	AuditFields
}
