package types

type ResolveUnknownRequest struct {
	TargetID int `json:"target_id" validate:"required,min=1"`
}
