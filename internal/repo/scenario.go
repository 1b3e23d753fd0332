package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

type Scenario struct {
	db  *bun.DB
	sel selector.S[model.Scenario]
}

func NewScenario(db *bun.DB) *Scenario {
	return &Scenario{
		db:  db,
		sel: selector.New[model.Scenario](db),
	}
}

func (r *Scenario) GetScenarioByCode(ctx context.Context, code string) (*model.Scenario, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Relation("Waves", func(sq *bun.SelectQuery) *bun.SelectQuery {
				return sq.Order("wave_number ASC")
			}).
			Relation("Weapons", func(sq *bun.SelectQuery) *bun.SelectQuery {
				return sq.Order("display_order ASC")
			}).
			Relation("Weapons.Weapon").
			Where("code = ?", code)
	})
}

// GetScenarioCodes returns every scenario code, newest first. Feeds the sitemap.
func (r *Scenario) GetScenarioCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.NewSelect().
		Model((*model.Scenario)(nil)).
		Column("code").
		Order("created_at DESC").
		Scan(ctx, &codes)
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// CreateScenario inserts the scenario together with its waves and weapon
// slots in one transaction, so a partial failure never leaves orphan rows.
func (r *Scenario) CreateScenario(ctx context.Context, scenario *model.Scenario) error {
	now := time.Now()
	scenario.CreatedAt = now
	scenario.UpdatedAt = now

	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().
			Model(scenario).
			Exec(ctx); err != nil {
			return err
		}

		for _, wave := range scenario.Waves {
			wave.ScenarioCode = scenario.Code
		}
		if len(scenario.Waves) > 0 {
			if _, err := tx.NewInsert().
				Model(&scenario.Waves).
				Exec(ctx); err != nil {
				return err
			}
		}

		for _, weapon := range scenario.Weapons {
			weapon.ScenarioCode = scenario.Code
		}
		if len(scenario.Weapons) > 0 {
			if _, err := tx.NewInsert().
				Model(&scenario.Weapons).
				Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}
