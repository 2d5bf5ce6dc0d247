package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_dashboard/internal/models"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/mapping"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entrySelect = `
	SELECT e.entry_id, e.entry_date, e.month, e.year, e.kind,
	       e.category_id, c.name AS category_name,
	       e.responsible_id, r.name AS responsible_name,
	       e.description, e.amount, e.status,
	       e.tag_id, t.name AS tag_name,
	       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
	FROM entries e
	JOIN categories c ON c.category_id = e.category_id
	JOIN responsibles r ON r.responsible_id = e.responsible_id
	LEFT JOIN tags t ON t.tag_id = e.tag_id`

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// SaveEntry inserts a new entry. Referenced category, responsible and tag must exist.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO entries (entry_id, entry_date, month, year, kind, category_id, responsible_id,
		                     description, amount, status, tag_id,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.EntryDate, m.Month, m.Year, m.Kind, m.CategoryID, m.ResponsibleID,
		m.Description, m.Amount, m.Status, m.TagID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapWriteError(err, "save entry")
}

// FindEntryByID retrieves a single entry with its reference names.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	m, err := queryOne[models.Entry](ctx, r.Pool, "find entry "+entryID, entrySelect+` WHERE e.entry_id = $1;`, entryID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainEntry(*m)
	return &d, nil
}

// ListEntries retrieves entries matching the filter ordered by date, creation time and ID, newest first.
// A positive limit enables keyset pagination: one extra row is fetched to know whether a next page exists.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, *string, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if filter.Month != nil {
		add("e.month = ?", *filter.Month)
	}
	if filter.Year != nil {
		add("e.year = ?", *filter.Year)
	}
	if filter.Kind != nil {
		add("e.kind = ?", string(*filter.Kind))
	}
	if filter.Status != nil {
		add("e.status = ?", string(*filter.Status))
	}
	if filter.CategoryID != nil {
		add("e.category_id = ?", *filter.CategoryID)
	}
	if filter.ResponsibleID != nil {
		add("e.responsible_id = ?", *filter.ResponsibleID)
	}
	if filter.TagID != nil {
		add("e.tag_id = ?", *filter.TagID)
	}

	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeCursor(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(e.entry_date, e.created_at, e.entry_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}

	var sb strings.Builder
	sb.WriteString(entrySelect)
	if len(conds) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString("\n\tORDER BY e.entry_date DESC, e.created_at DESC, e.entry_id DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit+1)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	rows, err := queryAll[models.Entry](ctx, r.Pool, "list entries", sb.String(), args...)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
		last := rows[len(rows)-1]
		token := pagination.EncodeCursor(pagination.Cursor{
			Date:      last.EntryDate,
			CreatedAt: last.CreatedAt,
			ID:        last.EntryID,
		})
		nextToken = &token
	}

	return mapping.ToDomainEntrySlice(rows), nextToken, nil
}
