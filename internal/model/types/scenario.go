package types

import (
	"time"

	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/model"
)

// CreateScenarioRequest is what the ingestion pipeline posts: structured wave
// data plus raw recognizer text for stage and weapons, resolved server-side.
type CreateScenarioRequest struct {
	StageName       string               `json:"stage_name" validate:"required"`
	WeaponNames     []string             `json:"weapon_names" validate:"max=4"`
	DangerRate      int                  `json:"danger_rate" validate:"required,min=1,max=333"`
	TotalGoldenEggs int                  `json:"total_golden_eggs" validate:"min=0"`
	TotalPowerEggs  int                  `json:"total_power_eggs" validate:"min=0"`
	Waves           []ScenarioWaveInput  `json:"waves" validate:"required,min=1,max=4,dive"`
}

// ScenarioWithTags is the read shape of a scenario page: the stored record
// plus its derived tags.
type ScenarioWithTags struct {
	Code            string                  `json:"code"`
	AuthorID        null.String             `json:"authorId,omitempty"`
	StageID         int                     `json:"stageId"`
	DangerRate      int                     `json:"dangerRate"`
	TotalGoldenEggs int                     `json:"totalGoldenEggs"`
	TotalPowerEggs  int                     `json:"totalPowerEggs"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	Waves           []*model.ScenarioWave   `json:"waves"`
	Weapons         []*model.ScenarioWeapon `json:"weapons"`
	Tags            []string                `json:"tags"`
}

type ScenarioWaveInput struct {
	WaveNumber     int         `json:"wave_number" validate:"required,min=1,max=4"`
	Tide           string      `json:"tide" validate:"required,tide"`
	Event          null.String `json:"event"`
	DeliveredCount int         `json:"delivered_count" validate:"min=0"`
	Quota          int         `json:"quota" validate:"min=0"`
	Cleared        bool        `json:"cleared"`
}
