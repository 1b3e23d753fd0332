package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Weapon struct {
	bun.BaseModel `bun:"weapons,alias:wp"`

	WeaponID        int         `bun:",pk,autoincrement" json:"id"`
	Name            string      `json:"name"`
	IconURL         null.String `json:"iconUrl,omitempty"`
	IsGrizzcoWeapon bool        `json:"isGrizzcoWeapon"`
}
