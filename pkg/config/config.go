package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Redis         RedisConfig
	Storage       StorageConfig
	ResetToken    ResetTokenConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Booking       BookingConfig
	Simulation    SimulationConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MYRYDE_APP_ENV" required:"true"`
	Port         string `envconfig:"MYRYDE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MYRYDE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MYRYDE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"MYRYDE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MYRYDE_REDIS_ADDR"`
	Password     string        `envconfig:"MYRYDE_REDIS_PASSWORD"`
	DB           int           `envconfig:"MYRYDE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MYRYDE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MYRYDE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MYRYDE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MYRYDE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MYRYDE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// StorageConfig names the three whole-value keys the service persists under.
// They mirror the local-storage keys the original web client used.
type StorageConfig struct {
	UsersKey       string `envconfig:"MYRYDE_STORAGE_USERS_KEY" default:"myryde_users"`
	CurrentUserKey string `envconfig:"MYRYDE_STORAGE_CURRENT_USER_KEY" default:"myryde_current_user"`
	ThemeKey       string `envconfig:"MYRYDE_STORAGE_THEME_KEY" default:"myryde-theme"`
}

type ResetTokenConfig struct {
	Secret     string `envconfig:"MYRYDE_RESET_TOKEN_SECRET" required:"true"`
	Issuer     string `envconfig:"MYRYDE_RESET_TOKEN_ISSUER" default:"myryde"`
	TTLMinutes int    `envconfig:"MYRYDE_RESET_TOKEN_TTL_MINUTES" default:"15"`
}

// TTL returns the reset token lifetime configured in minutes.
func (r ResetTokenConfig) TTL() time.Duration {
	if r.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(r.TTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MYRYDE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MYRYDE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MYRYDE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MYRYDE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MYRYDE_ARGON_KEY_LEN" default:"32"`

	MinStrengthScore int `envconfig:"MYRYDE_PASSWORD_MIN_STRENGTH" default:"3"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"MYRYDE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIDLimit    int           `envconfig:"MYRYDE_AUTH_RATE_LIMIT_LOGIN_ID_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"MYRYDE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow  time.Duration `envconfig:"MYRYDE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterIDLimit int           `envconfig:"MYRYDE_AUTH_RATE_LIMIT_REGISTER_ID_LIMIT" default:"3"`
	RegisterIPLimit int           `envconfig:"MYRYDE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// BookingConfig carries the fixed WhatsApp hand-off destination.
type BookingConfig struct {
	WhatsAppNumber string `envconfig:"MYRYDE_BOOKING_WHATSAPP_NUMBER" default:"2348109600178"`
}

// SimulationConfig controls the artificial delay the password-recovery and
// email-verification flows apply to mimic a mail provider round trip.
type SimulationConfig struct {
	MailLatency time.Duration `envconfig:"MYRYDE_SIMULATED_MAIL_LATENCY" default:"2s"`
}
