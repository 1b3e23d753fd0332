package constant

// Tags derivable from a scenario's structured attributes. A scenario may carry
// any combination, except that exactly one of the night-count tags fires.
const (
	TagAllYellowRandom = "all-yellow-random"
	TagAllGreenRandom  = "all-green-random"
	TagEasy            = "easy"
	TagUnbeaten        = "unbeaten"
	TagHardFail        = "hard-fail"
	TagFarmWorthy      = "farm-worthy"
	TagDayOnly         = "day-only"
	TagNightOne        = "night-1"
	TagNightTwo        = "night-2"
	TagAllNight        = "all-night"
	TagBonusWave       = "bonus-wave"
)
