package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (ports, credentials)
// - default: values common across all environments (timeouts, grid policy)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Cache   CacheConfig
	Sweep   SweepConfig
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
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// BookingConfig bounds the per-slot lock in BookLesson. AcquireWait is how
// long a request may block on a contended slot before failing; HoldTTL caps
// the lock lifetime if a holder dies without releasing.
type BookingConfig struct {
	LockAcquireWait time.Duration `envconfig:"BOOKING_LOCK_ACQUIRE_WAIT" default:"5s"`
	LockHoldTTL     time.Duration `envconfig:"BOOKING_LOCK_HOLD_TTL" default:"10s"`
}

type CacheConfig struct {
	ScheduleTTL   time.Duration `envconfig:"CACHE_SCHEDULE_TTL" default:"10m"`
	SlotsTTL      time.Duration `envconfig:"CACHE_SLOTS_TTL" default:"5m"`
	UpcomingTTL   time.Duration `envconfig:"CACHE_UPCOMING_TTL" default:"5m"`
	InstructorTTL time.Duration `envconfig:"CACHE_INSTRUCTOR_TTL" default:"10m"`
}

type SweepConfig struct {
	Interval   time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
	StaleAfter time.Duration `envconfig:"SWEEP_STALE_AFTER" default:"24h"`
	BatchSize  int           `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		},
		Redis: RedisConfig{
			Addr: "localhost:16380",
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			LockAcquireWait: 200 * time.Millisecond,
			LockHoldTTL:     time.Second,
		},
		Cache: CacheConfig{
			ScheduleTTL:   time.Minute,
			SlotsTTL:      time.Minute,
			UpcomingTTL:   time.Minute,
			InstructorTTL: time.Minute,
		},
		Sweep: SweepConfig{
			Interval:   time.Hour,
			StaleAfter: 24 * time.Hour,
			BatchSize:  100,
		},
	}
}
