package services

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
)

// ReferenceReaderSvc reads the lookup tables. Results may be served from cache.
type ReferenceReaderSvc interface {
	GetReferenceData(ctx context.Context) (*domain.ReferenceData, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListResponsibles(ctx context.Context) ([]domain.Responsible, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

// ReferenceWriterSvc mutates the lookup tables. Every mutation invalidates the cached list it affects.
type ReferenceWriterSvc interface {
	CreateCategory(ctx context.Context, req dto.CategoryRequest, userID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, userID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string, userID string) error

	CreateResponsible(ctx context.Context, req dto.ResponsibleRequest, userID string) (*domain.Responsible, error)
	UpdateResponsible(ctx context.Context, responsibleID string, req dto.ResponsibleRequest, userID string) (*domain.Responsible, error)
	DeleteResponsible(ctx context.Context, responsibleID string, userID string) error

	CreateTag(ctx context.Context, req dto.TagRequest, userID string) (*domain.Tag, error)
	UpdateTag(ctx context.Context, tagID string, req dto.TagRequest, userID string) (*domain.Tag, error)
	DeleteTag(ctx context.Context, tagID string, userID string) error
}

// ReferenceDataSvcFacade combines reading and writing reference data.
type ReferenceDataSvcFacade interface {
	ReferenceReaderSvc
	ReferenceWriterSvc
}
