package model

import (
	"github.com/uptrace/bun"
)

// StageAlias maps an alternate recognizer label onto a canonical stage.
// Many aliases may point at one stage.
type StageAlias struct {
	bun.BaseModel `bun:"stage_aliases,alias:sa"`

	AliasID int    `bun:",pk,autoincrement" json:"id"`
	StageID int    `json:"stage_id"`
	Alias   string `json:"alias"`
}

type WeaponAlias struct {
	bun.BaseModel `bun:"weapon_aliases,alias:wa"`

	AliasID  int    `bun:",pk,autoincrement" json:"id"`
	WeaponID int    `json:"weapon_id"`
	Alias    string `json:"alias"`
}
