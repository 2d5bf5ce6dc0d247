package pgsql

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_dashboard/internal/models"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auditColumns = `created_at, created_by, last_updated_at, last_updated_by`

// --- Categories ---

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelect = `SELECT category_id, name, kind, color, is_active, ` + auditColumns + ` FROM categories`

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ms, err := queryAll[models.Category](ctx, r.Pool, "list categories", categorySelect+` ORDER BY kind, name;`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	m, err := queryOne[models.Category](ctx, r.Pool, "find category "+categoryID, categorySelect+` WHERE category_id = $1;`, categoryID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCategory(*m)
	return &d, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO categories (category_id, name, kind, color, is_active, `+auditColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.CategoryID, m.Name, m.Kind, m.Color, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapWriteError(err, "save category")
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	return r.execOne(ctx, "update category", `
		UPDATE categories
		SET name = $1, kind = $2, color = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $7;`,
		m.Name, m.Kind, m.Color, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.CategoryID)
}

// DeleteCategory fails with a validation error while entries or goals still reference the category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return r.execOne(ctx, "delete category", `DELETE FROM categories WHERE category_id = $1;`, categoryID)
}

// --- Responsibles ---

type PgxResponsibleRepository struct {
	BaseRepository
}

func newPgxResponsibleRepository(pool *pgxpool.Pool) portsrepo.ResponsibleRepositoryFacade {
	return &PgxResponsibleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ResponsibleRepositoryFacade = (*PgxResponsibleRepository)(nil)

const responsibleSelect = `SELECT responsible_id, name, email, is_active, ` + auditColumns + ` FROM responsibles`

func (r *PgxResponsibleRepository) ListResponsibles(ctx context.Context) ([]domain.Responsible, error) {
	ms, err := queryAll[models.Responsible](ctx, r.Pool, "list responsibles", responsibleSelect+` ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainResponsibleSlice(ms), nil
}

func (r *PgxResponsibleRepository) FindResponsibleByID(ctx context.Context, responsibleID string) (*domain.Responsible, error) {
	m, err := queryOne[models.Responsible](ctx, r.Pool, "find responsible "+responsibleID, responsibleSelect+` WHERE responsible_id = $1;`, responsibleID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainResponsible(*m)
	return &d, nil
}

func (r *PgxResponsibleRepository) SaveResponsible(ctx context.Context, responsible domain.Responsible) error {
	m := mapping.ToModelResponsible(responsible)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO responsibles (responsible_id, name, email, is_active, `+auditColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.ResponsibleID, m.Name, m.Email, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapWriteError(err, "save responsible")
}

func (r *PgxResponsibleRepository) UpdateResponsible(ctx context.Context, responsible domain.Responsible) error {
	m := mapping.ToModelResponsible(responsible)
	return r.execOne(ctx, "update responsible", `
		UPDATE responsibles
		SET name = $1, email = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE responsible_id = $6;`,
		m.Name, m.Email, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.ResponsibleID)
}

func (r *PgxResponsibleRepository) DeleteResponsible(ctx context.Context, responsibleID string) error {
	return r.execOne(ctx, "delete responsible", `DELETE FROM responsibles WHERE responsible_id = $1;`, responsibleID)
}

// --- Tags ---

type PgxTagRepository struct {
	BaseRepository
}

func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

const tagSelect = `SELECT tag_id, name, color, is_active, ` + auditColumns + ` FROM tags`

func (r *PgxTagRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	ms, err := queryAll[models.Tag](ctx, r.Pool, "list tags", tagSelect+` ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTagSlice(ms), nil
}

func (r *PgxTagRepository) FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	m, err := queryOne[models.Tag](ctx, r.Pool, "find tag "+tagID, tagSelect+` WHERE tag_id = $1;`, tagID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTag(*m)
	return &d, nil
}

func (r *PgxTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO tags (tag_id, name, color, is_active, `+auditColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.TagID, m.Name, m.Color, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapWriteError(err, "save tag")
}

func (r *PgxTagRepository) UpdateTag(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)
	return r.execOne(ctx, "update tag", `
		UPDATE tags
		SET name = $1, color = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tag_id = $6;`,
		m.Name, m.Color, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.TagID)
}

func (r *PgxTagRepository) DeleteTag(ctx context.Context, tagID string) error {
	return r.execOne(ctx, "delete tag", `DELETE FROM tags WHERE tag_id = $1;`, tagID)
}
