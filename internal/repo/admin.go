package repo

import (
	"context"

	"github.com/uptrace/bun"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

type Admin struct {
	db  *bun.DB
	sel selector.S[model.Admin]
}

func NewAdmin(db *bun.DB) *Admin {
	return &Admin{
		db:  db,
		sel: selector.New[model.Admin](db),
	}
}

// GetAdminByUserID returns hberr.ErrNotFound when the subject holds no
// admin membership row.
func (r *Admin) GetAdminByUserID(ctx context.Context, userID string) (*model.Admin, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID)
	})
}
