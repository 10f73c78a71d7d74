package textapi

import "go.uber.org/zap"

const (
	defaultMaxBody   = 64 << 20
	defaultUserAgent = "textapi-go/1.0"
)

type Config struct {
	client    HttpClient
	logger    *zap.Logger
	maxBody   int64
	userAgent string
}

func NewDefaultConfig() *Config {
	return &Config{
		logger:    zap.NewNop(),
		maxBody:   defaultMaxBody,
		userAgent: defaultUserAgent,
	}
}

type Option func(*Config)

// CustomClient replaces the HTTP client, e.g. with one of the decorators
// from packages closingclient, debugclient or metricsclient.
func CustomClient(client HttpClient) Option {
	return func(config *Config) {
		config.client = client
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(config *Config) {
		config.logger = logger
	}
}

// MaxBody limits the size of a response body.
func MaxBody(maxBody int64) Option {
	return func(config *Config) {
		config.maxBody = maxBody
	}
}

func UserAgent(userAgent string) Option {
	return func(config *Config) {
		config.userAgent = userAgent
	}
}
