package infra

import (
	"sakelien.dev/scenario-backend/internal/app/appconfig"
	"sakelien.dev/scenario-backend/internal/pkg/identity"
)

func Identity(conf *appconfig.Config) *identity.Client {
	return identity.NewClient(conf.AuthURL, conf.AuthAnonKey)
}
