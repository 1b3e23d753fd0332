package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Scenario is one recorded run. Code is an opaque token and doubles as the
// public identifier on scenario pages.
type Scenario struct {
	bun.BaseModel `bun:"scenarios,alias:sc"`

	Code            string      `bun:",pk" json:"code"`
	AuthorID        null.String `json:"authorId,omitempty"`
	StageID         int         `json:"stageId"`
	DangerRate      int         `json:"dangerRate"`
	TotalGoldenEggs int         `json:"totalGoldenEggs"`
	TotalPowerEggs  int         `json:"totalPowerEggs"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`

	Waves   []*ScenarioWave   `bun:"rel:has-many,join:code=scenario_code" json:"waves,omitempty"`
	Weapons []*ScenarioWeapon `bun:"rel:has-many,join:code=scenario_code" json:"weapons,omitempty"`
}

type ScenarioWave struct {
	bun.BaseModel `bun:"scenario_waves,alias:sw"`

	WaveID         int         `bun:",pk,autoincrement" json:"-"`
	ScenarioCode   string      `json:"-"`
	WaveNumber     int         `json:"waveNumber"`
	Tide           string      `json:"tide"`
	Event          null.String `json:"event,omitempty"`
	DeliveredCount int         `json:"deliveredCount"`
	Quota          int         `json:"quota"`
	Cleared        bool        `json:"cleared"`
}

type ScenarioWeapon struct {
	bun.BaseModel `bun:"scenario_weapons,alias:scw"`

	ID           int    `bun:",pk,autoincrement" json:"-"`
	ScenarioCode string `json:"-"`
	WeaponID     int    `json:"weaponId"`
	DisplayOrder int    `json:"displayOrder"`

	Weapon *Weapon `bun:"rel:belongs-to,join:weapon_id=weapon_id" json:"weapon,omitempty"`
}
