package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. FromEnv keeps main lean and
// gives every knob a development default so the service boots with no env set.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	TokenTTL      time.Duration

	// Admin login gate. AdminPasswordHash is a bcrypt hash; the dev default
	// corresponds to the password "changeme".
	AdminUsername     string
	AdminPasswordHash string

	PostgresURL string
	Redis       RedisConfig
	SMTP        SMTPConfig
	Kafka       KafkaConfig

	// PageSize is the fixed admin listing page size.
	PageSize int

	// WizardSessionTTL bounds how long an idle registration session is kept.
	WizardSessionTTL time.Duration
	// DraftTTL bounds how long step drafts survive in the draft store.
	DraftTTL time.Duration

	Logging LoggingConfig
}

// RedisConfig mirrors the go-redis options we override from env.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SMTPConfig configures the transactional mailer. Empty host disables email
// sending (the notifier logs and drops instead of failing registrations).
type SMTPConfig struct {
	Host       string
	Port       string
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// KafkaConfig configures the audit event sink. Empty brokers disables the
// Kafka publisher; audit events still land in the outbox table.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// LoggingConfig selects slog handler and level.
type LoggingConfig struct {
	Level  string
	Format string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:          envOr("PROMOHUB_ADDR", ":8080"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:     envOr("JWT_ISSUER", "promohub"),
		TokenTTL:      envDuration("TOKEN_TTL", 12*time.Hour),

		AdminUsername: envOr("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: envOr("ADMIN_PASSWORD_HASH",
			"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),

		PostgresURL: os.Getenv("POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		SMTP: SMTPConfig{
			Host:       os.Getenv("SMTP_HOST"),
			Port:       envOr("SMTP_PORT", "465"),
			Username:   os.Getenv("SMTP_USERNAME"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			From:       envOr("SMTP_FROM", "no-reply@promohub.example"),
			AdminEmail: envOr("ADMIN_NOTIFY_EMAIL", "talent-team@promohub.example"),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
			Topic:   envOr("KAFKA_AUDIT_TOPIC", "promohub.audit"),
		},

		PageSize:         envInt("LISTING_PAGE_SIZE", 10),
		WizardSessionTTL: envDuration("WIZARD_SESSION_TTL", 2*time.Hour),
		DraftTTL:         envDuration("DRAFT_TTL", 7*24*time.Hour),

		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "text"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
