package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, business hours, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Schedule ScheduleConfig
	Redis    RedisConfig
	Stripe   StripeConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Idempotent-Replayed,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Admin tokens are issued by the hosted auth provider; only the shared secret lives here.
type JWTConfig struct {
	Secret    string `envconfig:"JWT_SECRET" required:"true"`
	Duration  string `envconfig:"JWT_DURATION" default:"1h"`
	AdminRole string `envconfig:"JWT_ADMIN_ROLE" default:"admin"`
}

type ScheduleConfig struct {
	TimeZone         string        `envconfig:"BOOKING_TIMEZONE" default:"Europe/Berlin"`
	Open             string        `envconfig:"BOOKING_OPEN" default:"10:00"`
	Close            string        `envconfig:"BOOKING_CLOSE" default:"22:00"`
	BufferMinutes    int           `envconfig:"BOOKING_BUFFER_MINUTES" default:"30"`
	AllowedDurations []int         `envconfig:"BOOKING_ALLOWED_DURATIONS" default:"45,60,75,90,105,120"`
	SlotStepMinutes  int           `envconfig:"BOOKING_SLOT_STEP_MINUTES" default:"15"`
	MinLeadDays      int           `envconfig:"BOOKING_MIN_LEAD_DAYS" default:"1"`
	MaxScanDays      int           `envconfig:"BOOKING_MAX_SCAN_DAYS" default:"30"`
	PendingHoldTTL   time.Duration `envconfig:"BOOKING_PENDING_HOLD_TTL" default:"0s"`
	IdempotencyTTL   time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

// Empty Addr disables the availability cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30s"`
}

type StripeConfig struct {
	WebhookSecret    string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	WebhookTolerance time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:    "test-secret-key-for-e2e-only",
			Duration:  "1h",
			AdminRole: "admin",
		},
		Schedule: NewDefaultScheduleConfig(),
		Redis: RedisConfig{
			CacheTTL: 30 * time.Second,
		},
		Stripe: StripeConfig{
			WebhookSecret:    "whsec_test_secret",
			WebhookTolerance: 5 * time.Minute,
		},
	}
}

func NewDefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		TimeZone:         "Europe/Berlin",
		Open:             "10:00",
		Close:            "22:00",
		BufferMinutes:    30,
		AllowedDurations: []int{45, 60, 75, 90, 105, 120},
		SlotStepMinutes:  15,
		MinLeadDays:      1,
		MaxScanDays:      30,
		IdempotencyTTL:   24 * time.Hour,
	}
}
