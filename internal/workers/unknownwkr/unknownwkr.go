package unknownwkr

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/app/appconfig"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/repo"
)

type WorkerDeps struct {
	fx.In

	StageRepo       *repo.Stage
	WeaponRepo      *repo.Weapon
	StageAliasRepo  *repo.StageAlias
	WeaponAliasRepo *repo.WeaponAlias
	UnknownRepo     *repo.Unknown
}

// Worker periodically sweeps the unknown moderation queue and closes entries
// that have since gained a canonical row or an alias, so entries an admin
// fixed through master-data edits don't sit open forever.
type Worker struct {
	// count counts sweeps the worker has completed so far
	count int

	// interval describes the time in-between sweeps
	interval time.Duration

	// timeout bounds a single sweep
	timeout time.Duration

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("unknown queue worker is disabled")
		return
	}
	(&Worker{
		interval:   conf.WorkerInterval,
		timeout:    conf.WorkerTimeout,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			log.Info().
				Int("count", w.count).
				Msg("unknown queue sweep started")

			sweepCtx, sweepCancel := context.WithTimeout(ctx, w.timeout)
			if err := w.sweep(sweepCtx); err != nil {
				log.Error().Err(err).Msg("unknown queue sweep failed")
			}
			sweepCancel()

			log.Info().Int("count", w.count).Msg("unknown queue sweep finished")

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

func (w *Worker) sweep(ctx context.Context) error {
	stages, err := w.UnknownRepo.GetOpenStages(ctx)
	if err != nil {
		return err
	}
	for _, unknown := range stages {
		resolvable, err := w.stageResolvable(ctx, unknown.Name)
		if err != nil {
			return err
		}
		if !resolvable {
			continue
		}
		if err := w.UnknownRepo.ResolveStage(ctx, unknown.ID); err != nil && !errors.Is(err, hberr.ErrNotFound) {
			return err
		}
		log.Info().Str("name", unknown.Name).Msg("unknown stage entry closed")
	}

	weapons, err := w.UnknownRepo.GetOpenWeapons(ctx)
	if err != nil {
		return err
	}
	for _, unknown := range weapons {
		resolvable, err := w.weaponResolvable(ctx, unknown.Name)
		if err != nil {
			return err
		}
		if !resolvable {
			continue
		}
		if err := w.UnknownRepo.ResolveWeapon(ctx, unknown.ID); err != nil && !errors.Is(err, hberr.ErrNotFound) {
			return err
		}
		log.Info().Str("name", unknown.Name).Msg("unknown weapon entry closed")
	}

	return nil
}

// A queue entry is resolvable once its label hits the exact or alias tier.
// The substring tier is deliberately left out: closing an entry on a fuzzy
// hit would hide labels that still deserve an explicit alias.
func (w *Worker) stageResolvable(ctx context.Context, name string) (bool, error) {
	if _, err := w.StageRepo.GetStageByName(ctx, name); err == nil {
		return true, nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		return false, err
	}
	if _, err := w.StageAliasRepo.GetAliasByLabel(ctx, name); err == nil {
		return true, nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		return false, err
	}
	return false, nil
}

func (w *Worker) weaponResolvable(ctx context.Context, name string) (bool, error) {
	if _, err := w.WeaponRepo.GetWeaponByName(ctx, name); err == nil {
		return true, nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		return false, err
	}
	if _, err := w.WeaponAliasRepo.GetAliasByLabel(ctx, name); err == nil {
		return true, nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		return false, err
	}
	return false, nil
}

func (w *Worker) Count() int {
	return w.count
}
