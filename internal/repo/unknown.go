package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

// Unknown persists the moderation queue of recognizer labels the resolver
// could not map.
type Unknown struct {
	db        *bun.DB
	stageSel  selector.S[model.UnknownStage]
	weaponSel selector.S[model.UnknownWeapon]
}

func NewUnknown(db *bun.DB) *Unknown {
	return &Unknown{
		db:        db,
		stageSel:  selector.New[model.UnknownStage](db),
		weaponSel: selector.New[model.UnknownWeapon](db),
	}
}

func (r *Unknown) GetOpenStages(ctx context.Context) ([]*model.UnknownStage, error) {
	return r.stageSel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("resolved_at IS NULL").Order("detected_at DESC")
	})
}

func (r *Unknown) GetOpenWeapons(ctx context.Context) ([]*model.UnknownWeapon, error) {
	return r.weaponSel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("resolved_at IS NULL").Order("detected_at DESC")
	})
}

func (r *Unknown) GetStageByID(ctx context.Context, id int) (*model.UnknownStage, error) {
	return r.stageSel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Unknown) GetWeaponByID(ctx context.Context, id int) (*model.UnknownWeapon, error) {
	return r.weaponSel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

// CreateStage records a missed stage label. Open entries are deduplicated on
// the label so repeated misses don't flood the queue.
func (r *Unknown) CreateStage(ctx context.Context, name string) (*model.UnknownStage, error) {
	existing, err := r.stageSel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name).Where("resolved_at IS NULL")
	})
	if err == nil {
		return existing, nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		return nil, err
	}

	unknown := &model.UnknownStage{
		Name:       name,
		DetectedAt: time.Now(),
	}
	if _, err := r.db.NewInsert().
		Model(unknown).
		Returning("id").
		Exec(ctx); err != nil {
		return nil, err
	}
	return unknown, nil
}

func (r *Unknown) CreateWeapon(ctx context.Context, name string) (*model.UnknownWeapon, error) {
	existing, err := r.weaponSel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name).Where("resolved_at IS NULL")
	})
	if err == nil {
		return existing, nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		return nil, err
	}

	unknown := &model.UnknownWeapon{
		Name:       name,
		DetectedAt: time.Now(),
	}
	if _, err := r.db.NewInsert().
		Model(unknown).
		Returning("id").
		Exec(ctx); err != nil {
		return nil, err
	}
	return unknown, nil
}

func (r *Unknown) ResolveStage(ctx context.Context, id int) error {
	return r.resolveStageWith(ctx, r.db, id)
}

func (r *Unknown) ResolveStageTx(ctx context.Context, tx bun.Tx, id int) error {
	return r.resolveStageWith(ctx, tx, id)
}

func (r *Unknown) ResolveWeapon(ctx context.Context, id int) error {
	return r.resolveWeaponWith(ctx, r.db, id)
}

func (r *Unknown) ResolveWeaponTx(ctx context.Context, tx bun.Tx, id int) error {
	return r.resolveWeaponWith(ctx, tx, id)
}

func (r *Unknown) resolveStageWith(ctx context.Context, db bun.IDB, id int) error {
	res, err := db.NewUpdate().
		Model((*model.UnknownStage)(nil)).
		Set("resolved_at = ?", null.TimeFrom(time.Now())).
		Where("id = ?", id).
		Where("resolved_at IS NULL").
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return hberr.ErrNotFound
	}
	return nil
}

func (r *Unknown) resolveWeaponWith(ctx context.Context, db bun.IDB, id int) error {
	res, err := db.NewUpdate().
		Model((*model.UnknownWeapon)(nil)).
		Set("resolved_at = ?", null.TimeFrom(time.Now())).
		Where("id = ?", id).
		Where("resolved_at IS NULL").
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return hberr.ErrNotFound
	}
	return nil
}

// RunInTx exposes a transaction scope for flows that pair alias creation with
// queue resolution.
func (r *Unknown) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return r.db.RunInTx(ctx, nil, fn)
}
