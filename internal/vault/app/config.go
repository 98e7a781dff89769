package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/aussiebroadwan/passvault/pkg/cryptox"
	"github.com/aussiebroadwan/passvault/pkg/jwtx"
)

// ErrConfiguration wraps every startup configuration failure.
var ErrConfiguration = errors.New("invalid configuration")

type Config struct {
	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	// DatabaseDriver is sqlite or postgres. For sqlite DatabaseURL is a file
	// path.
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"passvault.db"`

	// JWTSecret signs session tokens (HS256). Must be at least 32 bytes.
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"10m"`
	TokenIssuer string        `env:"TOKEN_ISSUER" envDefault:"passvault"`

	// EncryptionSecret is the hex encoded AES-256 key for stored secrets.
	// EncryptionSecretFile takes precedence when set.
	EncryptionSecret     string `env:"ENCRYPTION_SECRET"`
	EncryptionSecretFile string `env:"ENCRYPTION_SECRET_FILE"`

	PepperFile        string `env:"PASSWORD_PEPPER_FILE"`
	Argon2MemoryKiB   uint32 `env:"ARGON2_MEMORY_KIB" envDefault:"19456"`
	Argon2Iterations  uint32 `env:"ARGON2_ITERATIONS" envDefault:"2"`
	Argon2Parallelism uint8  `env:"ARGON2_PARALLELISM" envDefault:"1"`

	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	AuditRetention       time.Duration `env:"AUDIT_RETENTION" envDefault:"2160h"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads the environment into a Config and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express. Key material is only
// checked for presence here; it is decoded in New.
func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", c.DatabaseDriver))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}

	if len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.TokenIssuer == "" {
		errs = append(errs, errors.New("TOKEN_ISSUER is required"))
	}
	if c.EncryptionSecret == "" && c.EncryptionSecretFile == "" {
		errs = append(errs, errors.New("ENCRYPTION_SECRET or ENCRYPTION_SECRET_FILE is required"))
	}

	if c.Argon2MemoryKiB == 0 || c.Argon2Iterations == 0 || c.Argon2Parallelism == 0 {
		errs = append(errs, errors.New("argon2 parameters must be positive"))
	}
	if c.HousekeepingInterval <= 0 {
		errs = append(errs, errors.New("HOUSEKEEPING_INTERVAL must be positive"))
	}
	if c.AuditRetention <= 0 {
		errs = append(errs, errors.New("AUDIT_RETENTION must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfiguration, errors.Join(errs...))
	}
	return nil
}

// HashParams returns the Argon2id parameters for new password hashes.
func (c Config) HashParams() cryptox.HashParams {
	return cryptox.HashParams{
		Memory:      c.Argon2MemoryKiB,
		Iterations:  c.Argon2Iterations,
		Parallelism: c.Argon2Parallelism,
	}
}
