package model

import (
	"github.com/uptrace/bun"
)

// Admin is a membership-only record; presence of a row implies elevated
// privilege for that identity subject.
type Admin struct {
	bun.BaseModel `bun:"admins,alias:ad"`

	UserID string `bun:",pk" json:"userId"`
}
