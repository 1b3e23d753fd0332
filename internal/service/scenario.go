package service

import (
	"context"
	"time"

	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/model/cache"
	"sakelien.dev/scenario-backend/internal/model/types"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/pkg/scode"
	"sakelien.dev/scenario-backend/internal/repo"
)

type Scenario struct {
	ScenarioRepo    *repo.Scenario
	ResolverService *Resolver
	TagService      *Tag
}

func NewScenario(scenarioRepo *repo.Scenario, resolverService *Resolver, tagService *Tag) *Scenario {
	return &Scenario{
		ScenarioRepo:    scenarioRepo,
		ResolverService: resolverService,
		TagService:      tagService,
	}
}

// Cache: scenario#code:{code}, 1 hr
func (s *Scenario) GetScenarioByCode(ctx context.Context, code string) (*model.Scenario, error) {
	var scenario model.Scenario
	_, err := cache.ScenarioByCode.MutexGetSet(code, &scenario, func() (model.Scenario, error) {
		found, err := s.ScenarioRepo.GetScenarioByCode(ctx, code)
		if err != nil {
			return model.Scenario{}, err
		}
		return *found, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

// GetScenarioTags derives the tag set for a stored scenario.
func (s *Scenario) GetScenarioTags(scenario *model.Scenario) []string {
	return s.TagService.Derive(scenario)
}

// CreateScenario turns an ingestion payload into a stored scenario. Stage and
// weapon labels are recognizer text and get resolved to canonical ids; an
// unresolvable stage rejects the whole payload, while an unresolvable weapon
// only drops that slot (both still land in the unknown queue via the resolver).
func (s *Scenario) CreateScenario(ctx context.Context, req *types.CreateScenarioRequest, authorID null.String) (*model.Scenario, error) {
	stageID, err := s.ResolverService.ResolveStage(ctx, req.StageName)
	if err != nil {
		return nil, err
	}
	if !stageID.Valid {
		return nil, hberr.ErrInvalidReq.Msg("unrecognized stage: %s", req.StageName)
	}

	weaponIDs, err := s.ResolverService.ResolveWeapons(ctx, req.WeaponNames)
	if err != nil {
		return nil, err
	}

	scenario := &model.Scenario{
		Code:            scode.New(),
		AuthorID:        authorID,
		StageID:         int(stageID.Int64),
		DangerRate:      req.DangerRate,
		TotalGoldenEggs: req.TotalGoldenEggs,
		TotalPowerEggs:  req.TotalPowerEggs,
	}

	for _, wave := range req.Waves {
		scenario.Waves = append(scenario.Waves, &model.ScenarioWave{
			WaveNumber:     wave.WaveNumber,
			Tide:           wave.Tide,
			Event:          wave.Event,
			DeliveredCount: wave.DeliveredCount,
			Quota:          wave.Quota,
			Cleared:        wave.Cleared,
		})
	}

	for i, weaponID := range weaponIDs {
		if !weaponID.Valid {
			continue
		}
		scenario.Weapons = append(scenario.Weapons, &model.ScenarioWeapon{
			WeaponID:     int(weaponID.Int64),
			DisplayOrder: i + 1,
		})
	}

	if err := s.ScenarioRepo.CreateScenario(ctx, scenario); err != nil {
		return nil, err
	}

	cache.SitemapXML.Flush()

	return scenario, nil
}
