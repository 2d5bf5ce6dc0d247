package dto

// PeriodParams selects a calendar month. Missing values default to the current month.
type PeriodParams struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=1900,max=9999"`
}

// TopTransactionsParams adds the number of items to the shared filters.
type TopTransactionsParams struct {
	EntryFilterParams
	Limit int `form:"limit,default=5" binding:"min=1,max=100"`
}

// ExportParams selects the export format on top of the shared filters.
type ExportParams struct {
	EntryFilterParams
	Format string `form:"format,default=csv" binding:"oneof=csv json xlsx"`
}
