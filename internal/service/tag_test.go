package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/model"
)

func wave(number int, cleared bool, event string) *model.ScenarioWave {
	w := &model.ScenarioWave{
		WaveNumber: number,
		Tide:       constant.TideNormal,
		Cleared:    cleared,
	}
	if event != "" {
		w.Event = null.StringFrom(event)
	}
	return w
}

func weaponSlot(name string) *model.ScenarioWeapon {
	return &model.ScenarioWeapon{
		Weapon: &model.Weapon{Name: name},
	}
}

func TestTagDeriveIsDeterministic(t *testing.T) {
	tag := NewTag()
	scenario := &model.Scenario{
		DangerRate:      200,
		TotalGoldenEggs: 150,
		Waves: []*model.ScenarioWave{
			wave(1, true, "Rush"),
			wave(2, true, ""),
			wave(3, false, "Fog"),
		},
		Weapons: []*model.ScenarioWeapon{weaponSlot("Splattershot")},
	}

	first := tag.Derive(scenario)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tag.Derive(scenario))
	}
}

func TestTagNightCountExactlyOneFires(t *testing.T) {
	tag := NewTag()
	nightTags := []string{constant.TagDayOnly, constant.TagNightOne, constant.TagNightTwo, constant.TagAllNight}

	cases := []struct {
		events []string
		want   string
	}{
		{[]string{"", "", ""}, constant.TagDayOnly},
		{[]string{"Rush", "", ""}, constant.TagNightOne},
		{[]string{"Rush", "Fog", ""}, constant.TagNightTwo},
		{[]string{"Rush", "Fog", "Glowflies"}, constant.TagAllNight},
		// the EX boss marker is not a night occurrence
		{[]string{"King Cohozuna", "", ""}, constant.TagDayOnly},
	}

	for _, tc := range cases {
		scenario := &model.Scenario{
			DangerRate: 200,
			Waves: []*model.ScenarioWave{
				wave(1, true, tc.events[0]),
				wave(2, true, tc.events[1]),
				wave(3, true, tc.events[2]),
			},
		}
		derived := tag.Derive(scenario)

		hits := 0
		for _, nt := range nightTags {
			if contains(derived, nt) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "events %v", tc.events)
		assert.Contains(t, derived, tc.want, "events %v", tc.events)
	}
}

func TestTagUnbeatenAndHardFail(t *testing.T) {
	tag := NewTag()
	scenario := &model.Scenario{
		DangerRate: constant.DangerRateMax,
		Waves: []*model.ScenarioWave{
			wave(1, false, ""),
			wave(2, false, ""),
			wave(3, false, ""),
		},
	}

	derived := tag.Derive(scenario)
	assert.Contains(t, derived, constant.TagUnbeaten)
	assert.Contains(t, derived, constant.TagHardFail)
}

func TestTagEasyAndFarmWorthy(t *testing.T) {
	tag := NewTag()
	scenario := &model.Scenario{
		DangerRate:      150,
		TotalGoldenEggs: 250,
		Waves: []*model.ScenarioWave{
			wave(1, true, ""),
			wave(2, true, ""),
			wave(3, true, ""),
		},
	}

	derived := tag.Derive(scenario)
	assert.Contains(t, derived, constant.TagEasy)
	assert.Contains(t, derived, constant.TagFarmWorthy)
	assert.NotContains(t, derived, constant.TagHardFail)
	assert.NotContains(t, derived, constant.TagUnbeaten)
}

func TestTagBoundaries(t *testing.T) {
	tag := NewTag()

	atEasyBound := tag.Derive(&model.Scenario{DangerRate: constant.DangerRateEasyBelow})
	assert.NotContains(t, atEasyBound, constant.TagEasy)

	belowEasyBound := tag.Derive(&model.Scenario{DangerRate: constant.DangerRateEasyBelow - 1})
	assert.Contains(t, belowEasyBound, constant.TagEasy)

	atFarmBound := tag.Derive(&model.Scenario{DangerRate: 200, TotalGoldenEggs: constant.FarmWorthyGoldenEggs})
	assert.NotContains(t, atFarmBound, constant.TagFarmWorthy)

	aboveFarmBound := tag.Derive(&model.Scenario{DangerRate: 200, TotalGoldenEggs: constant.FarmWorthyGoldenEggs + 1})
	assert.Contains(t, aboveFarmBound, constant.TagFarmWorthy)
}

func TestTagRandomWeaponComposition(t *testing.T) {
	tag := NewTag()

	allYellow := tag.Derive(&model.Scenario{
		DangerRate: 200,
		Weapons: []*model.ScenarioWeapon{
			weaponSlot(constant.WeaponNameYellowRandom),
			weaponSlot(constant.WeaponNameYellowRandom),
			weaponSlot(constant.WeaponNameYellowRandom),
			weaponSlot(constant.WeaponNameYellowRandom),
		},
	})
	assert.Contains(t, allYellow, constant.TagAllYellowRandom)
	assert.NotContains(t, allYellow, constant.TagAllGreenRandom)

	allGreen := tag.Derive(&model.Scenario{
		DangerRate: 200,
		Weapons: []*model.ScenarioWeapon{
			weaponSlot(constant.WeaponNameGreenRandom),
		},
	})
	assert.Contains(t, allGreen, constant.TagAllGreenRandom)

	mixed := tag.Derive(&model.Scenario{
		DangerRate: 200,
		Weapons: []*model.ScenarioWeapon{
			weaponSlot(constant.WeaponNameYellowRandom),
			weaponSlot("Splattershot"),
		},
	})
	assert.NotContains(t, mixed, constant.TagAllYellowRandom)
	assert.NotContains(t, mixed, constant.TagAllGreenRandom)

	empty := tag.Derive(&model.Scenario{DangerRate: 200})
	assert.NotContains(t, empty, constant.TagAllYellowRandom)
	assert.NotContains(t, empty, constant.TagAllGreenRandom)
}

func TestTagBonusWave(t *testing.T) {
	tag := NewTag()
	scenario := &model.Scenario{
		DangerRate: 200,
		Waves: []*model.ScenarioWave{
			wave(1, true, ""),
			wave(2, true, ""),
			wave(3, true, ""),
			wave(constant.BonusWaveNumber, true, "King Cohozuna"),
		},
	}

	derived := tag.Derive(scenario)
	assert.Contains(t, derived, constant.TagBonusWave)
	// the bonus wave never contributes to the night count
	assert.Contains(t, derived, constant.TagDayOnly)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
