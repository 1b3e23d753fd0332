package constant

// Wave numbering. Waves 1 to 3 are normal waves; the fourth slot is the
// bonus (EX) wave.
const (
	NormalWaveMax    = 3
	BonusWaveNumber  = 4
	MaxWeaponsPerRun = 4
)

// Tides a wave can spawn at.
const (
	TideLow    = "low"
	TideNormal = "normal"
	TideHigh   = "high"
)

// Danger rate is a percentage; 333 is the in-game maximum.
const (
	DangerRateEasyBelow = 160
	DangerRateMax       = 333
)

// Weapon name sentinels emitted by the recognizer for random loadout slots.
const (
	WeaponNameYellowRandom = "Random"
	WeaponNameGreenRandom  = "Grizzco Random"
)

// EventExBossMarker appears inside event labels that belong to the EX boss
// encounter rather than a night occurrence.
const EventExBossMarker = "King"

// FarmWorthyGoldenEggs is the exclusive lower bound for the farm-worthy tag.
const FarmWorthyGoldenEggs = 200
