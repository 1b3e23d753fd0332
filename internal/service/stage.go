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

type Stage struct {
	StageRepo *repo.Stage
}

func NewStage(stageRepo *repo.Stage) *Stage {
	return &Stage{
		StageRepo: stageRepo,
	}
}

// Cache: stages, 24 hrs
func (s *Stage) GetStages(ctx context.Context) ([]*model.Stage, error) {
	var stages []*model.Stage
	err := cache.Stages.MutexGetSet(&stages, func() ([]*model.Stage, error) {
		return s.StageRepo.GetStages(ctx)
	}, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	return stages, nil
}

// Cache: stagesMapById, 24 hrs
func (s *Stage) GetStagesMapByID(ctx context.Context) (map[int]*model.Stage, error) {
	var stagesMapByID map[int]*model.Stage
	err := cache.StagesMapByID.MutexGetSet(&stagesMapByID, func() (map[int]*model.Stage, error) {
		stages, err := s.GetStages(ctx)
		if err != nil {
			return nil, err
		}
		return lo.SliceToMap(stages, func(stage *model.Stage) (int, *model.Stage) {
			return stage.StageID, stage
		}), nil
	}, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	return stagesMapByID, nil
}

func (s *Stage) GetStageByID(ctx context.Context, stageID int) (*model.Stage, error) {
	stagesMapByID, err := s.GetStagesMapByID(ctx)
	if err != nil {
		return nil, err
	}
	stage, ok := stagesMapByID[stageID]
	if !ok {
		return nil, hberr.ErrNotFound
	}
	return stage, nil
}
