package types

type CreateStageAliasRequest struct {
	StageID int    `json:"stage_id"`
	Alias   string `json:"alias"`
}

type CreateWeaponAliasRequest struct {
	WeaponID int    `json:"weapon_id"`
	Alias    string `json:"alias"`
}
