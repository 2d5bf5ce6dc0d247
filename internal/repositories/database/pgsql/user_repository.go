package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_dashboard/internal/models"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userSelect = `
	SELECT user_id, email, name, password_hash, role, refresh_token_hash, refresh_token_expiry_time,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM users`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (user_id, email, name, password_hash, role, `+auditColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.UserID, m.Email, m.Name, m.PasswordHash, m.Role, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapWriteError(err, "save user")
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "find user by ID", userSelect+` WHERE user_id = $1;`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "find user by email", userSelect+` WHERE LOWER(email) = LOWER($1);`, email)
}

func (r *PgxUserRepository) FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	return r.findOne(ctx, "find user by refresh token", userSelect+` WHERE refresh_token_hash = $1;`, tokenHash)
}

func (r *PgxUserRepository) findOne(ctx context.Context, op, query string, arg any) (*domain.User, error) {
	m, err := queryOne[models.User](ctx, r.Pool, op, query, arg)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	ms, err := queryAll[models.User](ctx, r.Pool, "list users",
		userSelect+` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainUserSlice(ms), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return r.execOne(ctx, "update user", `
		UPDATE users
		SET name = $1, role = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $5;`,
		user.Name, string(user.Role), user.LastUpdatedAt, user.LastUpdatedBy, user.UserID)
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	return r.execOne(ctx, "update refresh token", `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = NOW()
		WHERE user_id = $3;`,
		tokenHash, expiresAt, userID)
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return r.execOne(ctx, "clear refresh token", `
		UPDATE users
		SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL, last_updated_at = NOW()
		WHERE user_id = $1;`,
		userID)
}
