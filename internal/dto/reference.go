package dto

import "github.com/SscSPs/cashflow_dashboard/internal/core/domain"

// CategoryRequest is used to create or replace a category.
type CategoryRequest struct {
	Name     string           `json:"name" binding:"required,max=80"`
	Kind     domain.EntryKind `json:"kind" binding:"required,entry_kind"`
	Color    string           `json:"color" binding:"omitempty,hexcolor"`
	IsActive *bool            `json:"isActive"`
}

// ResponsibleRequest is used to create or replace a responsible party.
type ResponsibleRequest struct {
	Name     string  `json:"name" binding:"required,max=120"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

// TagRequest is used to create or replace a tag.
type TagRequest struct {
	Name     string `json:"name" binding:"required,max=80"`
	Color    string `json:"color" binding:"omitempty,hexcolor"`
	IsActive *bool  `json:"isActive"`
}

// Active resolves an optional active flag, defaulting to true.
func Active(flag *bool) bool {
	return flag == nil || *flag
}

// ListCategoriesResponse wraps the categories list.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

type ListResponsiblesResponse struct {
	Responsibles []domain.Responsible `json:"responsibles"`
}

type ListTagsResponse struct {
	Tags []domain.Tag `json:"tags"`
}
