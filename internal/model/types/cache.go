package types

import "gopkg.in/guregu/null.v3"

type PurgeCacheRequest struct {
	Name string      `json:"name" validate:"required" example:"stages"`
	Key  null.String `json:"key"`
}
