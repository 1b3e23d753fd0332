package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/repo/selector"
)

type Account struct {
	db  *bun.DB
	sel selector.S[model.Account]
}

func NewAccount(db *bun.DB) *Account {
	return &Account{
		db:  db,
		sel: selector.New[model.Account](db),
	}
}

func (r *Account) GetAccountByUserID(ctx context.Context, userID string) (*model.Account, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID)
	})
}

func (r *Account) CreateAccount(ctx context.Context, userID string) (*model.Account, error) {
	account := &model.Account{
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(account).
		Returning("account_id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *Account) UpdateAvatarURL(ctx context.Context, userID string, avatarURL null.String) error {
	res, err := r.db.NewUpdate().
		Model((*model.Account)(nil)).
		Set("avatar_url = ?", avatarURL).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return hberr.ErrNotFound
	}
	return nil
}
