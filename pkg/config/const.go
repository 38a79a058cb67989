package config

// EnvPrefix is passed to envconfig; individual fields carry the full
// variable names so the prefix only matters for fields without tags.
const EnvPrefix = "EDUSTORE"

// Recognized application environments.
const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names shared between Load, tests and deploy tooling.
const (
	EnvAppEnv   = "EDUSTORE_APP_ENV"
	EnvPort     = "EDUSTORE_APP_PORT"
	EnvLogLevel = "EDUSTORE_LOG_LEVEL"

	EnvDBDSN  = "EDUSTORE_DB_DSN"
	EnvDBHost = "EDUSTORE_DB_HOST"
	EnvDBUser = "EDUSTORE_DB_USER"
	EnvDBName = "EDUSTORE_DB_NAME"

	EnvRedisURL = "EDUSTORE_REDIS_URL"

	EnvJWTSecret              = "EDUSTORE_JWT_SECRET"
	EnvJWTIssuer              = "EDUSTORE_JWT_ISSUER"
	EnvJWTExpMins             = "EDUSTORE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "EDUSTORE_REFRESH_TOKEN_TTL_MINUTES"

	EnvBankName          = "EDUSTORE_BANK_NAME"
	EnvBankAccountNumber = "EDUSTORE_BANK_ACCOUNT_NUMBER"
	EnvBankAccountHolder = "EDUSTORE_BANK_ACCOUNT_HOLDER"
)

// legacyDBEnvVars are required when EDUSTORE_DB_DSN is not provided.
var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
