package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence for categories
type CategoryRepositoryFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ResponsibleRepositoryFacade defines persistence for responsible parties
type ResponsibleRepositoryFacade interface {
	ListResponsibles(ctx context.Context) ([]domain.Responsible, error)
	FindResponsibleByID(ctx context.Context, responsibleID string) (*domain.Responsible, error)
	SaveResponsible(ctx context.Context, responsible domain.Responsible) error
	UpdateResponsible(ctx context.Context, responsible domain.Responsible) error
	DeleteResponsible(ctx context.Context, responsibleID string) error
}

// TagRepositoryFacade defines persistence for tags
type TagRepositoryFacade interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error)
	SaveTag(ctx context.Context, tag domain.Tag) error
	UpdateTag(ctx context.Context, tag domain.Tag) error
	DeleteTag(ctx context.Context, tagID string) error
}
