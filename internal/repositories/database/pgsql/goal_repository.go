package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_dashboard/internal/models"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalSelect = `
	SELECT g.goal_id, g.category_id, c.name AS category_name, g.kind, g.target_amount, g.month, g.year,
	       g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
	FROM goals g
	JOIN categories c ON c.category_id = g.category_id`

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func (r *PgxGoalRepository) ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Month != nil {
		args = append(args, *filter.Month)
		conds = append(conds, "g.month = $"+strconv.Itoa(len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conds = append(conds, "g.year = $"+strconv.Itoa(len(args)))
	}

	query := goalSelect
	if len(conds) > 0 {
		query += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\tORDER BY g.year DESC, g.month DESC, g.kind, c.name;"

	ms, err := queryAll[models.Goal](ctx, r.Pool, "list goals", query, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainGoalSlice(ms), nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	m, err := queryOne[models.Goal](ctx, r.Pool, "find goal "+goalID, goalSelect+` WHERE g.goal_id = $1;`, goalID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainGoal(*m)
	return &d, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO goals (goal_id, category_id, kind, target_amount, month, year, `+auditColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.GoalID, m.CategoryID, m.Kind, m.TargetAmount, m.Month, m.Year,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapWriteError(err, "save goal")
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	return r.execOne(ctx, "update goal", `
		UPDATE goals
		SET category_id = $1, kind = $2, target_amount = $3, month = $4, year = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE goal_id = $8;`,
		m.CategoryID, m.Kind, m.TargetAmount, m.Month, m.Year, m.LastUpdatedAt, m.LastUpdatedBy, m.GoalID)
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	return r.execOne(ctx, "delete goal", `DELETE FROM goals WHERE goal_id = $1;`, goalID)
}
