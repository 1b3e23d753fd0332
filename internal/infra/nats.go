package infra

import (
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"sakelien.dev/scenario-backend/internal/app/appconfig"
)

// NATS connects to the moderation event bus. A nil connection is a valid
// result: moderation events are simply disabled when no URL is configured.
func NATS(conf *appconfig.Config) (*nats.Conn, error) {
	if conf.NatsURL == "" {
		log.Warn().Msg("infra: nats: no url configured; moderation events are disabled")
		return nil, nil
	}

	nc, err := retry.DoWithData(func() (*nats.Conn, error) {
		return nats.Connect(conf.NatsURL)
	}, retry.Attempts(5), retry.Delay(time.Second))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect")
		return nil, err
	}

	return nc, nil
}
