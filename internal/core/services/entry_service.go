package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/events"
	"github.com/google/uuid"
)

type entryService struct {
	BaseService
	entryRepo       portsrepo.EntryRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	responsibleRepo portsrepo.ResponsibleRepositoryFacade
	tagRepo         portsrepo.TagRepositoryFacade
}

// NewEntryService creates a new EntryService with the given dependencies
func NewEntryService(
	entryRepo portsrepo.EntryRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	responsibleRepo portsrepo.ResponsibleRepositoryFacade,
	tagRepo portsrepo.TagRepositoryFacade,
	opts ...ServiceOption,
) portssvc.EntrySvcFacade {
	return &entryService{
		BaseService:     newBaseService(opts...),
		entryRepo:       entryRepo,
		categoryRepo:    categoryRepo,
		responsibleRepo: responsibleRepo,
		tagRepo:         tagRepo,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, *string, error) {
	entries, next, err := s.entryRepo.ListEntries(ctx, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to list entries")
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, next, nil
}

// CreateEntry validates the request against the reference tables before saving.
// The category must be active and of the same kind as the entry.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.Entry, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionCreate); err != nil {
		return nil, err
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date))
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid kind %q", req.Kind))
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid status %q", req.Status))
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, s.referenceLookupError(ctx, err, "category", req.CategoryID)
	}
	if !category.IsActive {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("category %s is inactive", category.Name))
	}
	if category.Kind != req.Kind {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("category %s only accepts %s entries", category.Name, category.Kind))
	}

	responsible, err := s.responsibleRepo.FindResponsibleByID(ctx, req.ResponsibleID)
	if err != nil {
		return nil, s.referenceLookupError(ctx, err, "responsible", req.ResponsibleID)
	}

	var tagID *string
	var tagName string
	if req.TagID != nil && strings.TrimSpace(*req.TagID) != "" {
		tag, err := s.tagRepo.FindTagByID(ctx, *req.TagID)
		if err != nil {
			return nil, s.referenceLookupError(ctx, err, "tag", *req.TagID)
		}
		tagID = &tag.TagID
		tagName = tag.Name
	}

	entry := domain.Entry{
		EntryID:         uuid.NewString(),
		Date:            date,
		Month:           int(date.Month()),
		Year:            date.Year(),
		Kind:            req.Kind,
		CategoryID:      category.CategoryID,
		CategoryName:    category.Name,
		ResponsibleID:   responsible.ResponsibleID,
		ResponsibleName: responsible.Name,
		Description:     strings.TrimSpace(req.Description),
		Amount:          req.Amount,
		Status:          req.Status,
		TagID:           tagID,
		TagName:         tagName,
		AuditFields:     s.auditFields(userID),
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry")
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)),
		slog.String("amount", entry.Amount.String()))
	s.publish(ctx, events.New(events.EntryCreated, events.OpCreated, entry.EntryID, userID))
	return &entry, nil
}

func (s *entryService) referenceLookupError(ctx context.Context, err error, what, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("%s %s does not exist", what, id))
	}
	s.LogError(ctx, err, "Failed to look up "+what, slog.String("id", id))
	return fmt.Errorf("failed to look up %s: %w", what, err)
}
