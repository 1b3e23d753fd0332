package appconfig

import (
	"time"

	"sakelien.dev/scenario-backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9030"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// infrastructure components connection instructions

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// NatsURL is the URL of the NATS server used for moderation events. See
	// https://pkg.go.dev/github.com/nats-io/nats.go#Connect for more information
	// on how to construct a NATS URL. Leaving this empty disables moderation events.
	NatsURL string `split_words:"true"`

	// RedisURL is the URL of the Redis server, and by default uses redis db 1, to avoid potential collision
	// with other locally running services. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	// for more information on how to construct a Redis URL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// SiteURL is the public base URL of the frontend, used for absolute links in
	// the sitemap, robots.txt and auth redirects.
	SiteURL string `required:"true" split_words:"true" default:"http://localhost:3000"`

	// AuthURL is the base URL of the identity provider (a GoTrue-compatible REST API).
	AuthURL string `required:"true" split_words:"true"`

	// AuthAnonKey is the publishable API key sent to the identity provider with every request.
	AuthAnonKey string `required:"true" split_words:"true"`

	// AuthJWTSecret is the HS256 secret the identity provider signs access tokens with.
	// When present, access tokens are verified locally without a round trip to the provider.
	AuthJWTSecret string `split_words:"true"`

	// AvatarS3Bucket is the bucket avatars get uploaded to. Leaving this empty stores
	// avatars inline on the profile row as data URIs instead.
	AvatarS3Bucket string `split_words:"true"`

	// AvatarS3Region is the region of the avatar bucket.
	AvatarS3Region string `split_words:"true" default:"ap-northeast-1"`

	// AvatarPublicBaseURL is the CDN base URL avatar object keys are appended to.
	AvatarPublicBaseURL string `split_words:"true"`

	AWSAccessKey string `split_words:"true"`
	AWSSecretKey string `split_words:"true"`

	// OGPFontPath points to a TTF used on social preview cards. When empty the
	// renderer falls back to the built-in bitmap face.
	OGPFontPath string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// WorkerInterval describes the interval in-between unknown queue re-resolution passes.
	WorkerInterval time.Duration `required:"true" split_words:"true" default:"10m"`

	// WorkerTimeout describes the timeout for a single re-resolution pass to run.
	WorkerTimeout time.Duration `required:"true" split_words:"true" default:"5m"`

	// WorkerEnabled is a flag to indicate whether to enable the unknown queue worker.
	WorkerEnabled bool `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
