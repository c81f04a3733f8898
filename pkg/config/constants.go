package config

// EnvPrefix is passed to envconfig; individual fields carry fully qualified
// names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv           = "MYRYDE_APP_ENV"
	EnvPort             = "MYRYDE_APP_PORT"
	EnvRedisURL         = "MYRYDE_REDIS_URL"
	EnvResetTokenSecret = "MYRYDE_RESET_TOKEN_SECRET"
)
