package domain

// EntryFilter narrows the entries returned by a list query. Nil fields are not applied.
type EntryFilter struct {
	Month         *int
	Year          *int
	Kind          *EntryKind
	Status        *EntryStatus
	CategoryID    *string
	ResponsibleID *string
	TagID         *string

	// Limit of 0 means no limit. NextToken continues a previous page.
	Limit     int
	NextToken *string
}

// GoalFilter narrows goals to a period.
type GoalFilter struct {
	Month *int
	Year  *int
}
