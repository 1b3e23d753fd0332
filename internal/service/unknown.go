package service

import (
	"context"

	"github.com/uptrace/bun"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/model/cache"
	"sakelien.dev/scenario-backend/internal/repo"
)

// Unknown serves the moderation queue of labels the resolver could not map.
type Unknown struct {
	UnknownRepo     *repo.Unknown
	StageAliasRepo  *repo.StageAlias
	WeaponAliasRepo *repo.WeaponAlias
}

func NewUnknown(unknownRepo *repo.Unknown, stageAliasRepo *repo.StageAlias, weaponAliasRepo *repo.WeaponAlias) *Unknown {
	return &Unknown{
		UnknownRepo:     unknownRepo,
		StageAliasRepo:  stageAliasRepo,
		WeaponAliasRepo: weaponAliasRepo,
	}
}

func (s *Unknown) GetOpenStages(ctx context.Context) ([]*model.UnknownStage, error) {
	return s.UnknownRepo.GetOpenStages(ctx)
}

func (s *Unknown) GetOpenWeapons(ctx context.Context) ([]*model.UnknownWeapon, error) {
	return s.UnknownRepo.GetOpenWeapons(ctx)
}

// ResolveStageWithAlias closes an open unknown stage entry by registering its
// label as an alias of the given canonical stage. Alias creation and the
// resolved stamp commit together or not at all.
func (s *Unknown) ResolveStageWithAlias(ctx context.Context, unknownID, stageID int) (*model.StageAlias, error) {
	unknown, err := s.UnknownRepo.GetStageByID(ctx, unknownID)
	if err != nil {
		return nil, err
	}

	var alias *model.StageAlias
	err = s.UnknownRepo.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		created, err := s.StageAliasRepo.CreateAliasTx(ctx, tx, stageID, unknown.Name)
		if err != nil {
			return err
		}
		alias = created
		return s.UnknownRepo.ResolveStageTx(ctx, tx, unknownID)
	})
	if err != nil {
		return nil, err
	}

	cache.StageAliases.Flush()
	return alias, nil
}

func (s *Unknown) ResolveWeaponWithAlias(ctx context.Context, unknownID, weaponID int) (*model.WeaponAlias, error) {
	unknown, err := s.UnknownRepo.GetWeaponByID(ctx, unknownID)
	if err != nil {
		return nil, err
	}

	var alias *model.WeaponAlias
	err = s.UnknownRepo.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		created, err := s.WeaponAliasRepo.CreateAliasTx(ctx, tx, weaponID, unknown.Name)
		if err != nil {
			return err
		}
		alias = created
		return s.UnknownRepo.ResolveWeaponTx(ctx, tx, unknownID)
	})
	if err != nil {
		return nil, err
	}

	cache.WeaponAliases.Flush()
	return alias, nil
}
