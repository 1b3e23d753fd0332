package repo

import (
	"context"

	"github.com/uptrace/bun"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

type StageAlias struct {
	db  *bun.DB
	sel selector.S[model.StageAlias]
}

func NewStageAlias(db *bun.DB) *StageAlias {
	return &StageAlias{
		db:  db,
		sel: selector.New[model.StageAlias](db),
	}
}

func (r *StageAlias) GetAliases(ctx context.Context) ([]*model.StageAlias, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("alias_id ASC")
	})
}

func (r *StageAlias) GetAliasByLabel(ctx context.Context, label string) (*model.StageAlias, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("alias = ?", label)
	})
}

func (r *StageAlias) CreateAlias(ctx context.Context, stageID int, label string) (*model.StageAlias, error) {
	alias := &model.StageAlias{
		StageID: stageID,
		Alias:   label,
	}
	_, err := r.db.NewInsert().
		Model(alias).
		Returning("alias_id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return alias, nil
}

// CreateAliasTx is CreateAlias inside a caller-provided transaction, used by
// the unknown queue resolution flow.
func (r *StageAlias) CreateAliasTx(ctx context.Context, tx bun.Tx, stageID int, label string) (*model.StageAlias, error) {
	alias := &model.StageAlias{
		StageID: stageID,
		Alias:   label,
	}
	_, err := tx.NewInsert().
		Model(alias).
		Returning("alias_id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return alias, nil
}

func (r *StageAlias) DeleteAlias(ctx context.Context, aliasID int) error {
	res, err := r.db.NewDelete().
		Model((*model.StageAlias)(nil)).
		Where("alias_id = ?", aliasID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return hberr.ErrNotFound
	}
	return nil
}
