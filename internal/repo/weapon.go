package repo

import (
	"context"

	"github.com/uptrace/bun"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

type Weapon struct {
	db  *bun.DB
	sel selector.S[model.Weapon]
}

func NewWeapon(db *bun.DB) *Weapon {
	return &Weapon{
		db:  db,
		sel: selector.New[model.Weapon](db),
	}
}

func (r *Weapon) GetWeapons(ctx context.Context) ([]*model.Weapon, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

// GetWeaponsOrderedByID is the scan order of the resolver's substring tier.
func (r *Weapon) GetWeaponsOrderedByID(ctx context.Context) ([]*model.Weapon, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("weapon_id ASC")
	})
}

func (r *Weapon) GetWeaponByID(ctx context.Context, weaponID int) (*model.Weapon, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("weapon_id = ?", weaponID)
	})
}

func (r *Weapon) GetWeaponByName(ctx context.Context, name string) (*model.Weapon, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name)
	})
}
