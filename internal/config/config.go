package config

import (
	"time"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	SRS       SRSConfig       `yaml:"srs"`
	Practice  PracticeConfig  `yaml:"practice"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token settings. Tokens are issued by the identity
// service; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"myenglish"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds the interval algorithm constants.
type SRSConfig struct {
	FailedRetryDelay time.Duration `yaml:"failed_retry_delay" env:"SRS_FAILED_RETRY_DELAY" env-default:"1m"`
	FirstStepRaw     string        `yaml:"first_step_days"    env:"SRS_FIRST_STEP_DAYS"    env-default:"0.021,0.042,0.083"`
	SecondStepRaw    string        `yaml:"second_step_days"   env:"SRS_SECOND_STEP_DAYS"   env-default:"0.25,0.5,1.0"`

	// FirstStep and SecondStep are parsed from their raw values during validation.
	FirstStep  [3]float64 `yaml:"-" env:"-"`
	SecondStep [3]float64 `yaml:"-" env:"-"`
}

// Domain converts the validated settings into the algorithm configuration.
func (s SRSConfig) Domain() domain.SRSConfig {
	return domain.SRSConfig{
		FailedRetryDelay:    s.FailedRetryDelay,
		FirstStepIntervals:  s.FirstStep,
		SecondStepIntervals: s.SecondStep,
	}
}

// PracticeConfig holds practice-session and word-list limits.
type PracticeConfig struct {
	MaxSessions     int           `yaml:"max_sessions"       env:"PRACTICE_MAX_SESSIONS"       env-default:"10000"`
	SessionIdleTTL  time.Duration `yaml:"session_idle_ttl"   env:"PRACTICE_SESSION_IDLE_TTL"   env-default:"2h"`
	MaxWordsPerList int           `yaml:"max_words_per_list" env:"PRACTICE_MAX_WORDS_PER_LIST" env-default:"5000"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"300"`
	MaxClients        int `yaml:"max_clients"         env:"RATE_LIMIT_MAX_CLIENTS"         env-default:"10000"`
}
