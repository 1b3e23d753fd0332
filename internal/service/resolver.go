package service

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/pkg/observability"
	"sakelien.dev/scenario-backend/internal/repo"
)

// Narrow views over the repo layer so the resolution logic is testable with
// in-memory fakes.
type stageDirectory interface {
	GetStageByName(ctx context.Context, name string) (*model.Stage, error)
	GetStagesOrderedByID(ctx context.Context) ([]*model.Stage, error)
}

type weaponDirectory interface {
	GetWeaponByName(ctx context.Context, name string) (*model.Weapon, error)
	GetWeaponsOrderedByID(ctx context.Context) ([]*model.Weapon, error)
}

type stageAliasLookup interface {
	GetAliasByLabel(ctx context.Context, label string) (*model.StageAlias, error)
}

type weaponAliasLookup interface {
	GetAliasByLabel(ctx context.Context, label string) (*model.WeaponAlias, error)
}

type unknownRecorder interface {
	CreateStage(ctx context.Context, name string) (*model.UnknownStage, error)
	CreateWeapon(ctx context.Context, name string) (*model.UnknownWeapon, error)
}

// Resolver maps free-text recognizer labels onto canonical master-data ids.
// Lookup runs in three tiers: exact name, alias table, then a substring
// containment scan over the canonical table in id order, where the first row
// whose name contains the label or is contained by it wins. A label no tier
// can place resolves to an invalid null.Int and lands in the unknown queue.
type Resolver struct {
	stages        stageDirectory
	weapons       weaponDirectory
	stageAliases  stageAliasLookup
	weaponAliases weaponAliasLookup
	unknowns      unknownRecorder
	natsConn      *nats.Conn
}

func NewResolver(
	stageRepo *repo.Stage,
	weaponRepo *repo.Weapon,
	stageAliasRepo *repo.StageAlias,
	weaponAliasRepo *repo.WeaponAlias,
	unknownRepo *repo.Unknown,
	natsConn *nats.Conn,
) *Resolver {
	return &Resolver{
		stages:        stageRepo,
		weapons:       weaponRepo,
		stageAliases:  stageAliasRepo,
		weaponAliases: weaponAliasRepo,
		unknowns:      unknownRepo,
		natsConn:      natsConn,
	}
}

// ResolveStage resolves a stage label. An unresolvable label yields an invalid
// null.Int with a nil error; an error is only returned when a tier fails for a
// reason other than the row not existing.
func (s *Resolver) ResolveStage(ctx context.Context, label string) (null.Int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		observability.ResolverLookups.WithLabelValues("stage", "miss").Inc()
		return null.NewInt(0, false), nil
	}

	stage, err := s.stages.GetStageByName(ctx, label)
	if err == nil {
		observability.ResolverLookups.WithLabelValues("stage", "exact").Inc()
		return null.IntFrom(int64(stage.StageID)), nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		observability.ResolverLookups.WithLabelValues("stage", "error").Inc()
		return null.NewInt(0, false), err
	}

	alias, err := s.stageAliases.GetAliasByLabel(ctx, label)
	if err == nil {
		observability.ResolverLookups.WithLabelValues("stage", "alias").Inc()
		return null.IntFrom(int64(alias.StageID)), nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		observability.ResolverLookups.WithLabelValues("stage", "error").Inc()
		return null.NewInt(0, false), err
	}

	stages, err := s.stages.GetStagesOrderedByID(ctx)
	if err != nil && !errors.Is(err, hberr.ErrNotFound) {
		observability.ResolverLookups.WithLabelValues("stage", "error").Inc()
		return null.NewInt(0, false), err
	}
	for _, stage := range stages {
		if strings.Contains(label, stage.Name) || strings.Contains(stage.Name, label) {
			observability.ResolverLookups.WithLabelValues("stage", "substring").Inc()
			return null.IntFrom(int64(stage.StageID)), nil
		}
	}

	observability.ResolverLookups.WithLabelValues("stage", "miss").Inc()
	s.recordUnknownStage(ctx, label)
	return null.NewInt(0, false), nil
}

// ResolveWeapon resolves a weapon label with the same tiering as ResolveStage.
func (s *Resolver) ResolveWeapon(ctx context.Context, label string) (null.Int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		observability.ResolverLookups.WithLabelValues("weapon", "miss").Inc()
		return null.NewInt(0, false), nil
	}

	weapon, err := s.weapons.GetWeaponByName(ctx, label)
	if err == nil {
		observability.ResolverLookups.WithLabelValues("weapon", "exact").Inc()
		return null.IntFrom(int64(weapon.WeaponID)), nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		observability.ResolverLookups.WithLabelValues("weapon", "error").Inc()
		return null.NewInt(0, false), err
	}

	alias, err := s.weaponAliases.GetAliasByLabel(ctx, label)
	if err == nil {
		observability.ResolverLookups.WithLabelValues("weapon", "alias").Inc()
		return null.IntFrom(int64(alias.WeaponID)), nil
	} else if !errors.Is(err, hberr.ErrNotFound) {
		observability.ResolverLookups.WithLabelValues("weapon", "error").Inc()
		return null.NewInt(0, false), err
	}

	weapons, err := s.weapons.GetWeaponsOrderedByID(ctx)
	if err != nil && !errors.Is(err, hberr.ErrNotFound) {
		observability.ResolverLookups.WithLabelValues("weapon", "error").Inc()
		return null.NewInt(0, false), err
	}
	for _, weapon := range weapons {
		if strings.Contains(label, weapon.Name) || strings.Contains(weapon.Name, label) {
			observability.ResolverLookups.WithLabelValues("weapon", "substring").Inc()
			return null.IntFrom(int64(weapon.WeaponID)), nil
		}
	}

	observability.ResolverLookups.WithLabelValues("weapon", "miss").Inc()
	s.recordUnknownWeapon(ctx, label)
	return null.NewInt(0, false), nil
}

// ResolveWeapons resolves each label independently, preserving order. A miss
// on one slot never short-circuits the rest.
func (s *Resolver) ResolveWeapons(ctx context.Context, labels []string) ([]null.Int, error) {
	results := make([]null.Int, len(labels))
	for i, label := range labels {
		result, err := s.ResolveWeapon(ctx, label)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

type unknownEvent struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Queue recording and event publishing are best effort: a failure here must
// not turn an otherwise clean miss into a request error.
func (s *Resolver) recordUnknownStage(ctx context.Context, label string) {
	unknown, err := s.unknowns.CreateStage(ctx, label)
	if err != nil {
		log.Warn().Err(err).Str("label", label).Msg("failed to record unknown stage")
		return
	}
	s.publish(constant.SubjectUnknownStage, unknownEvent{ID: unknown.ID, Name: unknown.Name})
}

func (s *Resolver) recordUnknownWeapon(ctx context.Context, label string) {
	unknown, err := s.unknowns.CreateWeapon(ctx, label)
	if err != nil {
		log.Warn().Err(err).Str("label", label).Msg("failed to record unknown weapon")
		return
	}
	s.publish(constant.SubjectUnknownWeapon, unknownEvent{ID: unknown.ID, Name: unknown.Name})
}

func (s *Resolver) publish(subject string, event unknownEvent) {
	if s.natsConn == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("failed to marshal moderation event")
		return
	}
	if err := s.natsConn.Publish(subject, payload); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("failed to publish moderation event")
	}
}
