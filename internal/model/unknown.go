package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// UnknownStage is a recognizer output the resolver could not map, awaiting
// admin triage. ResolvedAt is stamped once an alias or canonical entry covers it.
type UnknownStage struct {
	bun.BaseModel `bun:"unknown_stages,alias:us"`

	ID         int       `bun:",pk,autoincrement" json:"id"`
	Name       string    `json:"name"`
	DetectedAt time.Time `json:"detectedAt"`
	ResolvedAt null.Time `json:"resolvedAt,omitempty"`
}

type UnknownWeapon struct {
	bun.BaseModel `bun:"unknown_weapons,alias:uw"`

	ID         int       `bun:",pk,autoincrement" json:"id"`
	Name       string    `json:"name"`
	DetectedAt time.Time `json:"detectedAt"`
	ResolvedAt null.Time `json:"resolvedAt,omitempty"`
}
