package service

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewStage,
		NewWeapon,
		NewAlias,
		NewResolver,
		NewTag,
		NewAdmin,
		NewScenario,
		NewUnknown,
		NewAccount,
		NewStorage,
		NewOGP,
		NewSitemap,
		NewHealth,
	))
}
