package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Feedback  FeedbackConfig  `yaml:"feedback"`
	Censor    CensorConfig    `yaml:"censor"`
	Admin     AdminConfig     `yaml:"admin"`
	Notify    NotifyConfig    `yaml:"notify"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-API-Key,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns AllowedOrigins split on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns AllowedMethods split on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns AllowedHeaders split on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects and configures the durable store.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	SQLitePath      string        `yaml:"sqlite_path"        env:"DATABASE_SQLITE_PATH"        env-default:"feedback.db"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// FeedbackConfig holds submission and listing limits.
type FeedbackConfig struct {
	MaxTextLength   int           `yaml:"max_text_length"    env:"FEEDBACK_MAX_TEXT_LENGTH"    env-default:"5000"`
	MaxUserIDLength int           `yaml:"max_user_id_length" env:"FEEDBACK_MAX_USER_ID_LENGTH" env-default:"255"`
	StoreTimeout    time.Duration `yaml:"store_timeout"      env:"FEEDBACK_STORE_TIMEOUT"      env-default:"5s"`
	PublicListLimit int           `yaml:"public_list_limit"  env:"FEEDBACK_PUBLIC_LIST_LIMIT"  env-default:"50"`
}

// CensorConfig lists word list sources. All configured sources are merged.
type CensorConfig struct {
	WordlistPath string        `yaml:"wordlist_path" env:"CENSOR_WORDLIST_PATH"`
	WordlistURL  string        `yaml:"wordlist_url"  env:"CENSOR_WORDLIST_URL"`
	Words        string        `yaml:"words"         env:"CENSOR_WORDS"`
	UseDatabase  bool          `yaml:"use_database"  env:"CENSOR_USE_DATABASE"  env-default:"true"`
	SyncInterval time.Duration `yaml:"sync_interval" env:"CENSOR_SYNC_INTERVAL" env-default:"5m"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"CENSOR_FETCH_TIMEOUT" env-default:"10s"`
}

// InlineWords returns Words split on commas.
func (c CensorConfig) InlineWords() []string { return splitList(c.Words) }

// AdminConfig protects the review and word list endpoints. An empty key
// disables them.
type AdminConfig struct {
	APIKey string `yaml:"api_key" env:"ADMIN_API_KEY"`
}

// Enabled reports whether admin routes are mounted.
func (c AdminConfig) Enabled() bool { return c.APIKey != "" }

// NotifyConfig configures reviewer e-mail notifications. Without an API key
// notifications are only logged.
type NotifyConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"NOTIFY_RESEND_API_KEY"`
	From         string `yaml:"from"           env:"NOTIFY_FROM"`
	To           string `yaml:"to"             env:"NOTIFY_TO"`
}

// Recipients returns To split on commas.
func (c NotifyConfig) Recipients() []string { return splitList(c.To) }

// TelemetryConfig configures OTLP tracing. An empty endpoint disables it.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service_name"  env:"OTEL_SERVICE_NAME" env-default:"feedback-service"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"0"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
