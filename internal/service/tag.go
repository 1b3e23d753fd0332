package service

import (
	"strings"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/model"
)

// Tag derives descriptive labels from a scenario's structured attributes. The
// derivation is pure: same scenario in, same tags out, never an error.
type Tag struct{}

func NewTag() *Tag {
	return &Tag{}
}

// Derive evaluates every rule independently and accumulates all that apply.
// Exactly one of the night-count tags fires for any input.
func (s *Tag) Derive(scenario *model.Scenario) []string {
	tags := make([]string, 0, 4)

	if allWeaponsNamed(scenario.Weapons, constant.WeaponNameYellowRandom) {
		tags = append(tags, constant.TagAllYellowRandom)
	}
	if allWeaponsNamed(scenario.Weapons, constant.WeaponNameGreenRandom) {
		tags = append(tags, constant.TagAllGreenRandom)
	}

	if scenario.DangerRate < constant.DangerRateEasyBelow {
		tags = append(tags, constant.TagEasy)
	}

	normalWaves := 0
	clearedNormalWaves := 0
	nightWaves := 0
	bonusWave := false
	for _, wave := range scenario.Waves {
		if wave.WaveNumber > constant.NormalWaveMax {
			bonusWave = true
			continue
		}
		normalWaves++
		if wave.Cleared {
			clearedNormalWaves++
		}
		if isNightEvent(wave.Event.ValueOrZero()) {
			nightWaves++
		}
	}

	if normalWaves > 0 && clearedNormalWaves == 0 {
		tags = append(tags, constant.TagUnbeaten)
	}
	if scenario.DangerRate == constant.DangerRateMax && clearedNormalWaves < normalWaves {
		tags = append(tags, constant.TagHardFail)
	}
	if scenario.TotalGoldenEggs > constant.FarmWorthyGoldenEggs {
		tags = append(tags, constant.TagFarmWorthy)
	}

	switch nightWaves {
	case 0:
		tags = append(tags, constant.TagDayOnly)
	case 1:
		tags = append(tags, constant.TagNightOne)
	case 2:
		tags = append(tags, constant.TagNightTwo)
	default:
		tags = append(tags, constant.TagAllNight)
	}

	if bonusWave {
		tags = append(tags, constant.TagBonusWave)
	}

	return tags
}

func allWeaponsNamed(weapons []*model.ScenarioWeapon, sentinel string) bool {
	if len(weapons) == 0 {
		return false
	}
	for _, w := range weapons {
		if w.Weapon == nil || w.Weapon.Name != sentinel {
			return false
		}
	}
	return true
}

func isNightEvent(event string) bool {
	return event != "" && !strings.Contains(event, constant.EventExBossMarker)
}
