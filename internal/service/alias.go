package service

import (
	"context"
	"time"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/model/cache"
	"sakelien.dev/scenario-backend/internal/repo"
)

// Alias manages the moderation-facing alias tables. Mutations flush the alias
// list caches so the resolver observes changes on its next lookup.
type Alias struct {
	StageAliasRepo  *repo.StageAlias
	WeaponAliasRepo *repo.WeaponAlias
}

func NewAlias(stageAliasRepo *repo.StageAlias, weaponAliasRepo *repo.WeaponAlias) *Alias {
	return &Alias{
		StageAliasRepo:  stageAliasRepo,
		WeaponAliasRepo: weaponAliasRepo,
	}
}

// Cache: stageAliases, 1 hr
func (s *Alias) GetStageAliases(ctx context.Context) ([]*model.StageAlias, error) {
	var aliases []*model.StageAlias
	err := cache.StageAliases.MutexGetSet(&aliases, func() ([]*model.StageAlias, error) {
		return s.StageAliasRepo.GetAliases(ctx)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return aliases, nil
}

// Cache: weaponAliases, 1 hr
func (s *Alias) GetWeaponAliases(ctx context.Context) ([]*model.WeaponAlias, error) {
	var aliases []*model.WeaponAlias
	err := cache.WeaponAliases.MutexGetSet(&aliases, func() ([]*model.WeaponAlias, error) {
		return s.WeaponAliasRepo.GetAliases(ctx)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return aliases, nil
}

func (s *Alias) CreateStageAlias(ctx context.Context, stageID int, alias string) (*model.StageAlias, error) {
	created, err := s.StageAliasRepo.CreateAlias(ctx, stageID, alias)
	if err != nil {
		return nil, err
	}
	cache.StageAliases.Flush()
	return created, nil
}

func (s *Alias) DeleteStageAlias(ctx context.Context, aliasID int) error {
	if err := s.StageAliasRepo.DeleteAlias(ctx, aliasID); err != nil {
		return err
	}
	cache.StageAliases.Flush()
	return nil
}

func (s *Alias) CreateWeaponAlias(ctx context.Context, weaponID int, alias string) (*model.WeaponAlias, error) {
	created, err := s.WeaponAliasRepo.CreateAlias(ctx, weaponID, alias)
	if err != nil {
		return nil, err
	}
	cache.WeaponAliases.Flush()
	return created, nil
}

func (s *Alias) DeleteWeaponAlias(ctx context.Context, aliasID int) error {
	if err := s.WeaponAliasRepo.DeleteAlias(ctx, aliasID); err != nil {
		return err
	}
	cache.WeaponAliases.Flush()
	return nil
}
