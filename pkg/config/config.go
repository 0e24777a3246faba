package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Session   SessionConfig
	Backup    BackupConfig
	DB        DBConfig
	Redis     RedisConfig
	Payment   PaymentConfig
	EmailJS   EmailJSConfig
	Webhook   WebhookConfig
	Breaker   BreakerConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate cross-checks settings that depend on each other.
func (c *Config) Validate() error {
	switch c.Backup.Driver {
	case BackupDriverMemory:
	case BackupDriverRedis:
		if !c.Redis.Configured() {
			return fmt.Errorf("%s=redis requires %s or %s", EnvBackupDriver, EnvRedisURL, EnvRedisAddr)
		}
	case BackupDriverSQL:
		if strings.TrimSpace(c.DB.DSN) == "" {
			return fmt.Errorf("%s=sql requires %s", EnvBackupDriver, EnvDBDSN)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvBackupDriver, c.Backup.Driver)
	}
	if c.App.IsProd() {
		if strings.TrimSpace(c.Payment.KeyID) == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvRazorpayKeyID, EnvAppEnv, AppEnvProd)
		}
		if c.Webhook.ForceUnavailable {
			return fmt.Errorf("the webhook fallback cannot be forced unavailable when %s=%s", EnvAppEnv, AppEnvProd)
		}
	}
	if c.Backup.MemoryQuotaBytes < 0 {
		return fmt.Errorf("%s must not be negative", EnvBackupMemoryQuota)
	}
	if c.Session.TTL <= 0 || c.Session.SweepInterval <= 0 {
		return fmt.Errorf("%s and %s must be positive", EnvSessionTTL, EnvSessionSweepInterval)
	}
	if c.DB.DSN != "" && c.DB.Driver != DBDriverPostgres && c.DB.Driver != DBDriverSQLite {
		return fmt.Errorf("unsupported %s %q", EnvDBDriver, c.DB.Driver)
	}
	return nil
}

type AppConfig struct {
	Env            string   `envconfig:"SNACKSTORE_APP_ENV" required:"true"`
	Port           string   `envconfig:"SNACKSTORE_APP_PORT" default:"8080"`
	LogLevel       string   `envconfig:"SNACKSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack   bool     `envconfig:"SNACKSTORE_LOG_WARN_STACK" default:"false"`
	LogFormat      string   `envconfig:"SNACKSTORE_LOG_FORMAT" default:"json"`
	AllowedOrigins []string `envconfig:"SNACKSTORE_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	Secret        string        `envconfig:"SNACKSTORE_SESSION_SECRET" required:"true"`
	Issuer        string        `envconfig:"SNACKSTORE_SESSION_ISSUER" default:"naturesnacks"`
	TTL           time.Duration `envconfig:"SNACKSTORE_SESSION_TTL" default:"168h"`
	// how often idle carts and checkout state older than TTL are dropped
	SweepInterval time.Duration `envconfig:"SNACKSTORE_SESSION_SWEEP_INTERVAL" default:"10m"`
}

type BackupConfig struct {
	Driver           string `envconfig:"SNACKSTORE_BACKUP_DRIVER" default:"memory"`
	// caps the memory driver, 0 leaves it unbounded
	MemoryQuotaBytes int    `envconfig:"SNACKSTORE_BACKUP_MEMORY_QUOTA_BYTES" default:"5242880"`
}

type DBConfig struct {
	DSN         string `envconfig:"SNACKSTORE_DB_DSN"`
	Driver      string `envconfig:"SNACKSTORE_DB_DRIVER" default:"postgres"`
	AutoMigrate bool   `envconfig:"SNACKSTORE_DB_AUTO_MIGRATE" default:"false"`

	MaxOpenConns    int           `envconfig:"SNACKSTORE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"SNACKSTORE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"SNACKSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SNACKSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
	SlowQuery       time.Duration `envconfig:"SNACKSTORE_DB_SLOW_QUERY" default:"200ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SNACKSTORE_REDIS_URL"`
	Address      string        `envconfig:"SNACKSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"SNACKSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SNACKSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SNACKSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SNACKSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SNACKSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SNACKSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SNACKSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
	KeyPrefix    string        `envconfig:"SNACKSTORE_REDIS_KEY_PREFIX" default:"snackstore"`
}

// Configured reports whether enough settings exist to dial Redis.
func (r RedisConfig) Configured() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type PaymentConfig struct {
	KeyID        string `envconfig:"SNACKSTORE_RAZORPAY_KEY_ID"`
	Currency     string `envconfig:"SNACKSTORE_PAYMENT_CURRENCY" default:"INR"`
	MerchantName string `envconfig:"SNACKSTORE_PAYMENT_MERCHANT_NAME" default:"NatureSnacks"`
	Description  string `envconfig:"SNACKSTORE_PAYMENT_DESCRIPTION" default:"Premium Healthy Snacks Purchase"`
	ThemeColor   string `envconfig:"SNACKSTORE_PAYMENT_THEME_COLOR" default:"#16A34A"`
}

type EmailJSConfig struct {
	Endpoint   string        `envconfig:"SNACKSTORE_EMAILJS_ENDPOINT" default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID  string        `envconfig:"SNACKSTORE_EMAILJS_SERVICE_ID"`
	TemplateID string        `envconfig:"SNACKSTORE_EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `envconfig:"SNACKSTORE_EMAILJS_PUBLIC_KEY"`
	PrivateKey string        `envconfig:"SNACKSTORE_EMAILJS_PRIVATE_KEY"`
	Timeout    time.Duration `envconfig:"SNACKSTORE_EMAILJS_TIMEOUT" default:"10s"`
}

// Enabled reports whether the email channel has enough configuration to be attempted.
func (e EmailJSConfig) Enabled() bool {
	return e.ServiceID != "" && e.TemplateID != "" && e.PublicKey != ""
}

type WebhookConfig struct {
	URL              string        `envconfig:"SNACKSTORE_WEBHOOK_URL"`
	ForceUnavailable bool          `envconfig:"SNACKSTORE_WEBHOOK_FORCE_UNAVAILABLE" default:"false"`
	Timeout          time.Duration `envconfig:"SNACKSTORE_WEBHOOK_TIMEOUT" default:"10s"`
}

type BreakerConfig struct {
	MaxConsecutiveFailures uint32        `envconfig:"SNACKSTORE_EMAIL_BREAKER_MAX_FAILURES" default:"5"`
	OpenTimeout            time.Duration `envconfig:"SNACKSTORE_EMAIL_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

type RateLimitConfig struct {
	CheckoutWindow time.Duration `envconfig:"SNACKSTORE_RATE_LIMIT_CHECKOUT_WINDOW" default:"1m"`
	CheckoutLimit  int64         `envconfig:"SNACKSTORE_RATE_LIMIT_CHECKOUT_LIMIT" default:"10"`
}
