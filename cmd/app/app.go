package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"sakelien.dev/scenario-backend/cmd/app/server"
	"sakelien.dev/scenario-backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "scenario-backend",
		Description: "The scenario hub backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS for moderation events and Redis for caching.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
