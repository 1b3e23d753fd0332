package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Account is the profile row for an identity-provider user. UserID is the
// provider's subject claim.
type Account struct {
	bun.BaseModel `bun:"accounts,alias:ac"`

	AccountID int         `bun:",pk,autoincrement" json:"id"`
	UserID    string      `json:"userId"`
	AvatarURL null.String `json:"avatarUrl,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}
