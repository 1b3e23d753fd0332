package repo

import (
	"context"

	"github.com/uptrace/bun"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

type WeaponAlias struct {
	db  *bun.DB
	sel selector.S[model.WeaponAlias]
}

func NewWeaponAlias(db *bun.DB) *WeaponAlias {
	return &WeaponAlias{
		db:  db,
		sel: selector.New[model.WeaponAlias](db),
	}
}

func (r *WeaponAlias) GetAliases(ctx context.Context) ([]*model.WeaponAlias, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("alias_id ASC")
	})
}

func (r *WeaponAlias) GetAliasByLabel(ctx context.Context, label string) (*model.WeaponAlias, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("alias = ?", label)
	})
}

func (r *WeaponAlias) CreateAlias(ctx context.Context, weaponID int, label string) (*model.WeaponAlias, error) {
	alias := &model.WeaponAlias{
		WeaponID: weaponID,
		Alias:    label,
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

func (r *WeaponAlias) CreateAliasTx(ctx context.Context, tx bun.Tx, weaponID int, label string) (*model.WeaponAlias, error) {
	alias := &model.WeaponAlias{
		WeaponID: weaponID,
		Alias:    label,
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

func (r *WeaponAlias) DeleteAlias(ctx context.Context, aliasID int) error {
	res, err := r.db.NewDelete().
		Model((*model.WeaponAlias)(nil)).
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
