package repo

import (
	"context"

	"github.com/uptrace/bun"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

type Stage struct {
	db  *bun.DB
	sel selector.S[model.Stage]
}

func NewStage(db *bun.DB) *Stage {
	return &Stage{
		db:  db,
		sel: selector.New[model.Stage](db),
	}
}

func (r *Stage) GetStages(ctx context.Context) ([]*model.Stage, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

// GetStagesOrderedByID is the scan order of the resolver's substring tier:
// stage_id ascending, so the tie-break is reproducible across backends.
func (r *Stage) GetStagesOrderedByID(ctx context.Context) ([]*model.Stage, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("stage_id ASC")
	})
}

func (r *Stage) GetStageByID(ctx context.Context, stageID int) (*model.Stage, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("stage_id = ?", stageID)
	})
}

func (r *Stage) GetStageByName(ctx context.Context, name string) (*model.Stage, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name)
	})
}
