package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Stage struct {
	bun.BaseModel `bun:"stages,alias:st"`

	StageID  int         `bun:",pk,autoincrement" json:"id"`
	Name     string      `json:"name"`
	ImageURL null.String `json:"imageUrl,omitempty"`
}
