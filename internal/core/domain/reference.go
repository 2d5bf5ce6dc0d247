package domain

// Category groups entries of one kind (e.g. "Vendas" for inflows, "Salários" for outflows).
type Category struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Kind       EntryKind `json:"kind"`
	Color      string    `json:"color"`
	IsActive   bool      `json:"isActive"`
	AuditFields
}

// Responsible is the person or team accountable for an entry.
type Responsible struct {
	ResponsibleID string  `json:"responsibleID"`
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	IsActive      bool    `json:"isActive"`
	AuditFields
}

// Tag is a project or product label that can optionally be attached to entries.
type Tag struct {
	TagID    string `json:"tagID"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// ReferenceData bundles the lookup tables a dashboard needs to render filters.
type ReferenceData struct {
	Categories   []Category    `json:"categories"`
	Responsibles []Responsible `json:"responsibles"`
	Tags         []Tag         `json:"tags"`
}
