package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
)

type fakeStageDir struct {
	byName  map[string]*model.Stage
	ordered []*model.Stage
	nameErr error
}

func (f *fakeStageDir) GetStageByName(_ context.Context, name string) (*model.Stage, error) {
	if f.nameErr != nil {
		return nil, f.nameErr
	}
	if s, ok := f.byName[name]; ok {
		return s, nil
	}
	return nil, hberr.ErrNotFound
}

func (f *fakeStageDir) GetStagesOrderedByID(context.Context) ([]*model.Stage, error) {
	return f.ordered, nil
}

type fakeWeaponDir struct {
	byName  map[string]*model.Weapon
	ordered []*model.Weapon
}

func (f *fakeWeaponDir) GetWeaponByName(_ context.Context, name string) (*model.Weapon, error) {
	if w, ok := f.byName[name]; ok {
		return w, nil
	}
	return nil, hberr.ErrNotFound
}

func (f *fakeWeaponDir) GetWeaponsOrderedByID(context.Context) ([]*model.Weapon, error) {
	return f.ordered, nil
}

type fakeStageAliases struct {
	byLabel map[string]*model.StageAlias
}

func (f *fakeStageAliases) GetAliasByLabel(_ context.Context, label string) (*model.StageAlias, error) {
	if a, ok := f.byLabel[label]; ok {
		return a, nil
	}
	return nil, hberr.ErrNotFound
}

type fakeWeaponAliases struct {
	byLabel map[string]*model.WeaponAlias
}

func (f *fakeWeaponAliases) GetAliasByLabel(_ context.Context, label string) (*model.WeaponAlias, error) {
	if a, ok := f.byLabel[label]; ok {
		return a, nil
	}
	return nil, hberr.ErrNotFound
}

type fakeUnknowns struct {
	stages  []string
	weapons []string
}

func (f *fakeUnknowns) CreateStage(_ context.Context, name string) (*model.UnknownStage, error) {
	f.stages = append(f.stages, name)
	return &model.UnknownStage{ID: len(f.stages), Name: name}, nil
}

func (f *fakeUnknowns) CreateWeapon(_ context.Context, name string) (*model.UnknownWeapon, error) {
	f.weapons = append(f.weapons, name)
	return &model.UnknownWeapon{ID: len(f.weapons), Name: name}, nil
}

func newTestResolver() (*Resolver, *fakeStageDir, *fakeWeaponDir, *fakeStageAliases, *fakeWeaponAliases, *fakeUnknowns) {
	stages := &fakeStageDir{
		byName: map[string]*model.Stage{
			"Spawning Grounds": {StageID: 1, Name: "Spawning Grounds"},
			"Marooner's Bay":   {StageID: 2, Name: "Marooner's Bay"},
		},
		ordered: []*model.Stage{
			{StageID: 1, Name: "Spawning Grounds"},
			{StageID: 2, Name: "Marooner's Bay"},
		},
	}
	weapons := &fakeWeaponDir{
		byName: map[string]*model.Weapon{
			"Splattershot": {WeaponID: 10, Name: "Splattershot"},
		},
		ordered: []*model.Weapon{
			{WeaponID: 10, Name: "Splattershot"},
			{WeaponID: 11, Name: "Splat Roller"},
		},
	}
	stageAliases := &fakeStageAliases{
		byLabel: map[string]*model.StageAlias{
			"SG": {AliasID: 1, StageID: 1, Alias: "SG"},
		},
	}
	weaponAliases := &fakeWeaponAliases{
		byLabel: map[string]*model.WeaponAlias{
			"Shot": {AliasID: 1, WeaponID: 10, Alias: "Shot"},
		},
	}
	unknowns := &fakeUnknowns{}

	r := &Resolver{
		stages:        stages,
		weapons:       weapons,
		stageAliases:  stageAliases,
		weaponAliases: weaponAliases,
		unknowns:      unknowns,
	}
	return r, stages, weapons, stageAliases, weaponAliases, unknowns
}

func TestResolverExactMatch(t *testing.T) {
	r, _, _, _, _, unknowns := newTestResolver()

	got, err := r.ResolveStage(context.Background(), "Spawning Grounds")
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.EqualValues(t, 1, got.Int64)
	assert.Empty(t, unknowns.stages)
}

func TestResolverTrimsInput(t *testing.T) {
	r, _, _, _, _, _ := newTestResolver()

	got, err := r.ResolveStage(context.Background(), "  Spawning Grounds \n")
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Int64)
}

func TestResolverAliasTier(t *testing.T) {
	r, _, _, _, _, _ := newTestResolver()

	got, err := r.ResolveStage(context.Background(), "SG")
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.EqualValues(t, 1, got.Int64)

	w, err := r.ResolveWeapon(context.Background(), "Shot")
	require.NoError(t, err)
	assert.EqualValues(t, 10, w.Int64)
}

func TestResolverSubstringTier(t *testing.T) {
	r, _, _, _, _, _ := newTestResolver()

	// label contains a canonical name
	got, err := r.ResolveStage(context.Background(), "Spawning Grounds (Night)")
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Int64)

	// canonical name contains the label
	got, err = r.ResolveStage(context.Background(), "Marooner's")
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Int64)
}

// With both containment directions possible, the first hit in id order wins.
func TestResolverSubstringScanOrder(t *testing.T) {
	r, stages, _, _, _, _ := newTestResolver()
	stages.byName = map[string]*model.Stage{}
	stages.ordered = []*model.Stage{
		{StageID: 1, Name: "Stage A Extended"},
		{StageID: 2, Name: "Stage A"},
	}

	got, err := r.ResolveStage(context.Background(), "Stage A")
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Int64)
}

func TestResolverEmptyLabel(t *testing.T) {
	r, _, _, _, _, unknowns := newTestResolver()

	got, err := r.ResolveStage(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Empty(t, unknowns.stages)
}

func TestResolverMissRecordsUnknown(t *testing.T) {
	r, _, _, _, _, unknowns := newTestResolver()

	got, err := r.ResolveStage(context.Background(), "Totally Unheard Of")
	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Equal(t, []string{"Totally Unheard Of"}, unknowns.stages)

	w, err := r.ResolveWeapon(context.Background(), "Mystery Blaster")
	require.NoError(t, err)
	assert.False(t, w.Valid)
	assert.Equal(t, []string{"Mystery Blaster"}, unknowns.weapons)
}

func TestResolverPropagatesHardErrors(t *testing.T) {
	r, stages, _, _, _, unknowns := newTestResolver()
	stages.nameErr = errors.New("connection refused")

	_, err := r.ResolveStage(context.Background(), "Spawning Grounds")
	require.Error(t, err)
	assert.Empty(t, unknowns.stages)
}

func TestResolverBatchWeapons(t *testing.T) {
	r, _, _, _, _, unknowns := newTestResolver()

	got, err := r.ResolveWeapons(context.Background(), []string{
		"Splattershot",
		"No Such Weapon",
		"Shot",
		"Splat Roller Deco",
	})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.EqualValues(t, 10, got[0].Int64)
	assert.False(t, got[1].Valid)
	assert.EqualValues(t, 10, got[2].Int64)
	assert.EqualValues(t, 11, got[3].Int64)

	assert.Equal(t, []string{"No Such Weapon"}, unknowns.weapons)
}
