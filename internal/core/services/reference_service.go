package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/cache"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/events"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Cache keys of the reference lists.
const (
	CategoriesCacheKey   = "categories"
	ResponsiblesCacheKey = "responsibles"
	TagsCacheKey         = "tags"
)

// ReferenceCaches holds one cache per reference table.
type ReferenceCaches struct {
	Categories   cache.Cache[[]domain.Category]
	Responsibles cache.Cache[[]domain.Responsible]
	Tags         cache.Cache[[]domain.Tag]
}

// referenceDataService serves categories, responsibles and tags. Lists are read through
// the caches and every write invalidates the list of the table it touched.
type referenceDataService struct {
	BaseService
	categoryRepo    portsrepo.CategoryRepositoryFacade
	responsibleRepo portsrepo.ResponsibleRepositoryFacade
	tagRepo         portsrepo.TagRepositoryFacade
	caches          ReferenceCaches
}

func NewReferenceDataService(
	categoryRepo portsrepo.CategoryRepositoryFacade,
	responsibleRepo portsrepo.ResponsibleRepositoryFacade,
	tagRepo portsrepo.TagRepositoryFacade,
	caches ReferenceCaches,
	opts ...ServiceOption,
) portssvc.ReferenceDataSvcFacade {
	return &referenceDataService{
		BaseService:     newBaseService(opts...),
		categoryRepo:    categoryRepo,
		responsibleRepo: responsibleRepo,
		tagRepo:         tagRepo,
		caches:          caches,
	}
}

var _ portssvc.ReferenceDataSvcFacade = (*referenceDataService)(nil)

// cachedList returns the cached value for key or loads and stores it.
func cachedList[T any](ctx context.Context, c cache.Cache[[]T], key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if c != nil {
		if v, ok := c.Get(ctx, key); ok {
			return v, nil
		}
	}
	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = []T{}
	}
	if c != nil {
		c.Set(ctx, key, v)
	}
	return v, nil
}

func invalidate[T any](ctx context.Context, c cache.Cache[[]T], key string) {
	if c != nil {
		c.Delete(ctx, key)
	}
}

func (s *referenceDataService) GetReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	var data domain.ReferenceData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Categories, err = s.ListCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Responsibles, err = s.ListResponsibles(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Tags, err = s.ListTags(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *referenceDataService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	list, err := cachedList(ctx, s.caches.Categories, CategoriesCacheKey, s.categoryRepo.ListCategories)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return list, nil
}

func (s *referenceDataService) ListResponsibles(ctx context.Context) ([]domain.Responsible, error) {
	list, err := cachedList(ctx, s.caches.Responsibles, ResponsiblesCacheKey, s.responsibleRepo.ListResponsibles)
	if err != nil {
		s.LogError(ctx, err, "Failed to list responsibles")
		return nil, fmt.Errorf("failed to list responsibles: %w", err)
	}
	return list, nil
}

func (s *referenceDataService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	list, err := cachedList(ctx, s.caches.Tags, TagsCacheKey, s.tagRepo.ListTags)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tags")
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return list, nil
}

// --- categories ---

func (s *referenceDataService) CreateCategory(ctx context.Context, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	if err := validateReference(req.Name); err != nil {
		return nil, err
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid kind %q", req.Kind))
	}
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Kind:        req.Kind,
		Color:       req.Color,
		IsActive:    dto.Active(req.IsActive),
		AuditFields: s.auditFields(userID),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, s.writeError(ctx, err, "create category")
	}
	invalidate(ctx, s.caches.Categories, CategoriesCacheKey)
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	s.publish(ctx, events.New(events.CategoryChanged, events.OpCreated, category.CategoryID, userID))
	return &category, nil
}

func (s *referenceDataService) UpdateCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	if err := validateReference(req.Name); err != nil {
		return nil, err
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid kind %q", req.Kind))
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(req.Name)
	category.Kind = req.Kind
	category.Color = req.Color
	category.IsActive = dto.Active(req.IsActive)
	category.AuditFields = s.touch(category.AuditFields, userID)

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, s.writeError(ctx, err, "update category")
	}
	invalidate(ctx, s.caches.Categories, CategoriesCacheKey)
	s.publish(ctx, events.New(events.CategoryChanged, events.OpUpdated, categoryID, userID))
	return category, nil
}

func (s *referenceDataService) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return s.writeError(ctx, err, "delete category")
	}
	invalidate(ctx, s.caches.Categories, CategoriesCacheKey)
	s.publish(ctx, events.New(events.CategoryChanged, events.OpDeleted, categoryID, userID))
	return nil
}

// --- responsibles ---

func (s *referenceDataService) CreateResponsible(ctx context.Context, req dto.ResponsibleRequest, userID string) (*domain.Responsible, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	if err := validateReference(req.Name); err != nil {
		return nil, err
	}
	responsible := domain.Responsible{
		ResponsibleID: uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Email:         req.Email,
		IsActive:      dto.Active(req.IsActive),
		AuditFields:   s.auditFields(userID),
	}
	if err := s.responsibleRepo.SaveResponsible(ctx, responsible); err != nil {
		return nil, s.writeError(ctx, err, "create responsible")
	}
	invalidate(ctx, s.caches.Responsibles, ResponsiblesCacheKey)
	s.LogInfo(ctx, "Responsible created", slog.String("responsible_id", responsible.ResponsibleID))
	s.publish(ctx, events.New(events.ResponsibleChanged, events.OpCreated, responsible.ResponsibleID, userID))
	return &responsible, nil
}

func (s *referenceDataService) UpdateResponsible(ctx context.Context, responsibleID string, req dto.ResponsibleRequest, userID string) (*domain.Responsible, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	if err := validateReference(req.Name); err != nil {
		return nil, err
	}
	responsible, err := s.responsibleRepo.FindResponsibleByID(ctx, responsibleID)
	if err != nil {
		return nil, err
	}
	responsible.Name = strings.TrimSpace(req.Name)
	responsible.Email = req.Email
	responsible.IsActive = dto.Active(req.IsActive)
	responsible.AuditFields = s.touch(responsible.AuditFields, userID)

	if err := s.responsibleRepo.UpdateResponsible(ctx, *responsible); err != nil {
		return nil, s.writeError(ctx, err, "update responsible")
	}
	invalidate(ctx, s.caches.Responsibles, ResponsiblesCacheKey)
	s.publish(ctx, events.New(events.ResponsibleChanged, events.OpUpdated, responsibleID, userID))
	return responsible, nil
}

func (s *referenceDataService) DeleteResponsible(ctx context.Context, responsibleID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.responsibleRepo.DeleteResponsible(ctx, responsibleID); err != nil {
		return s.writeError(ctx, err, "delete responsible")
	}
	invalidate(ctx, s.caches.Responsibles, ResponsiblesCacheKey)
	s.publish(ctx, events.New(events.ResponsibleChanged, events.OpDeleted, responsibleID, userID))
	return nil
}

// --- tags ---

func (s *referenceDataService) CreateTag(ctx context.Context, req dto.TagRequest, userID string) (*domain.Tag, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	if err := validateReference(req.Name); err != nil {
		return nil, err
	}
	tag := domain.Tag{
		TagID:       uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Color:       req.Color,
		IsActive:    dto.Active(req.IsActive),
		AuditFields: s.auditFields(userID),
	}
	if err := s.tagRepo.SaveTag(ctx, tag); err != nil {
		return nil, s.writeError(ctx, err, "create tag")
	}
	invalidate(ctx, s.caches.Tags, TagsCacheKey)
	s.LogInfo(ctx, "Tag created", slog.String("tag_id", tag.TagID))
	s.publish(ctx, events.New(events.TagChanged, events.OpCreated, tag.TagID, userID))
	return &tag, nil
}

func (s *referenceDataService) UpdateTag(ctx context.Context, tagID string, req dto.TagRequest, userID string) (*domain.Tag, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	if err := validateReference(req.Name); err != nil {
		return nil, err
	}
	tag, err := s.tagRepo.FindTagByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	tag.Name = strings.TrimSpace(req.Name)
	tag.Color = req.Color
	tag.IsActive = dto.Active(req.IsActive)
	tag.AuditFields = s.touch(tag.AuditFields, userID)

	if err := s.tagRepo.UpdateTag(ctx, *tag); err != nil {
		return nil, s.writeError(ctx, err, "update tag")
	}
	invalidate(ctx, s.caches.Tags, TagsCacheKey)
	s.publish(ctx, events.New(events.TagChanged, events.OpUpdated, tagID, userID))
	return tag, nil
}

func (s *referenceDataService) DeleteTag(ctx context.Context, tagID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.tagRepo.DeleteTag(ctx, tagID); err != nil {
		return s.writeError(ctx, err, "delete tag")
	}
	invalidate(ctx, s.caches.Tags, TagsCacheKey)
	s.publish(ctx, events.New(events.TagChanged, events.OpDeleted, tagID, userID))
	return nil
}

func validateReference(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationFailedError("name is required")
	}
	return nil
}

// writeError passes typed repository errors through and wraps the rest.
func (s *referenceDataService) writeError(ctx context.Context, err error, op string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) || errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	s.LogError(ctx, err, "Failed to "+op)
	return fmt.Errorf("failed to %s: %w", op, err)
}
