package config

// EnvPrefix namespaces every variable read by Load.
const EnvPrefix = "SNACKSTORE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	BackupDriverMemory = "memory"
	BackupDriverRedis  = "redis"
	BackupDriverSQL    = "sql"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const (
	EnvAppEnv               = "SNACKSTORE_APP_ENV"
	EnvPort                 = "SNACKSTORE_APP_PORT"
	EnvSessionSecret        = "SNACKSTORE_SESSION_SECRET"
	EnvSessionTTL           = "SNACKSTORE_SESSION_TTL"
	EnvSessionSweepInterval = "SNACKSTORE_SESSION_SWEEP_INTERVAL"
	EnvBackupDriver         = "SNACKSTORE_BACKUP_DRIVER"
	EnvBackupMemoryQuota    = "SNACKSTORE_BACKUP_MEMORY_QUOTA_BYTES"
	EnvDBDSN                = "SNACKSTORE_DB_DSN"
	EnvDBDriver             = "SNACKSTORE_DB_DRIVER"
	EnvRedisURL             = "SNACKSTORE_REDIS_URL"
	EnvRedisAddr            = "SNACKSTORE_REDIS_ADDR"
	EnvRazorpayKeyID        = "SNACKSTORE_RAZORPAY_KEY_ID"
	EnvWebhookURL           = "SNACKSTORE_WEBHOOK_URL"
	EnvWebhookForceOff      = "SNACKSTORE_WEBHOOK_FORCE_UNAVAILABLE"
)
