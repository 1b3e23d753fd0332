package constant

// Discriminators for the unknown moderation queue.
const (
	UnknownTypeStages  = "stages"
	UnknownTypeWeapons = "weapons"
)

// NATS subjects for moderation events published on resolution misses.
const (
	SubjectUnknownStage  = "moderation.unknown.stage"
	SubjectUnknownWeapon = "moderation.unknown.weapon"
)
