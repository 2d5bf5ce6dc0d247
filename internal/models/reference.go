package models

import "database/sql"

type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	Kind       string `db:"kind"`
	Color      string `db:"color"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}

type Responsible struct {
	ResponsibleID string         `db:"responsible_id"`
	Name          string         `db:"name"`
	Email         sql.NullString `db:"email"`
	IsActive      bool           `db:"is_active"`
	AuditFields
}

type Tag struct {
	TagID    string `db:"tag_id"`
	Name     string `db:"name"`
	Color    string `db:"color"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
