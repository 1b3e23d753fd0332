package server

import (
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/server/httpserver"
	"sakelien.dev/scenario-backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
