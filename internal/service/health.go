package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Health struct {
	DB *bun.DB
}

func NewHealth(db *bun.DB) *Health {
	return &Health{
		DB: db,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := s.DB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}
