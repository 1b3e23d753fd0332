package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/model/cache"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/repo"
)

type Weapon struct {
	WeaponRepo *repo.Weapon
}

func NewWeapon(weaponRepo *repo.Weapon) *Weapon {
	return &Weapon{
		WeaponRepo: weaponRepo,
	}
}

// Cache: weapons, 24 hrs
func (s *Weapon) GetWeapons(ctx context.Context) ([]*model.Weapon, error) {
	var weapons []*model.Weapon
	err := cache.Weapons.MutexGetSet(&weapons, func() ([]*model.Weapon, error) {
		return s.WeaponRepo.GetWeapons(ctx)
	}, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	return weapons, nil
}

// Cache: weaponsMapById, 24 hrs
func (s *Weapon) GetWeaponsMapByID(ctx context.Context) (map[int]*model.Weapon, error) {
	var weaponsMapByID map[int]*model.Weapon
	err := cache.WeaponsMapByID.MutexGetSet(&weaponsMapByID, func() (map[int]*model.Weapon, error) {
		weapons, err := s.GetWeapons(ctx)
		if err != nil {
			return nil, err
		}
		return lo.SliceToMap(weapons, func(weapon *model.Weapon) (int, *model.Weapon) {
			return weapon.WeaponID, weapon
		}), nil
	}, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	return weaponsMapByID, nil
}

func (s *Weapon) GetWeaponByID(ctx context.Context, weaponID int) (*model.Weapon, error) {
	weaponsMapByID, err := s.GetWeaponsMapByID(ctx)
	if err != nil {
		return nil, err
	}
	weapon, ok := weaponsMapByID[weaponID]
	if !ok {
		return nil, hberr.ErrNotFound
	}
	return weapon, nil
}
