package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Service       ServiceConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Bank          BankConfig
	Checkout      CheckoutConfig
	Cron          CronConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"EDUSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"EDUSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"EDUSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EDUSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"EDUSTORE_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"EDUSTORE_DB_DSN"`
	Driver string `envconfig:"EDUSTORE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"EDUSTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"EDUSTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"EDUSTORE_DB_USER"`
	LegacyPassword string `envconfig:"EDUSTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"EDUSTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"EDUSTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"EDUSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"EDUSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"EDUSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"EDUSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"EDUSTORE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"EDUSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"EDUSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"EDUSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"EDUSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"EDUSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"EDUSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"EDUSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"EDUSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"EDUSTORE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"EDUSTORE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"EDUSTORE_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"EDUSTORE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"EDUSTORE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"EDUSTORE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"EDUSTORE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"EDUSTORE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"EDUSTORE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"EDUSTORE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"EDUSTORE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"EDUSTORE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"EDUSTORE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"EDUSTORE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"EDUSTORE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"EDUSTORE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"EDUSTORE_AUTO_MIGRATE" default:"false"`
}

// BankConfig is the manual transfer destination shown with checkout
// instructions.
type BankConfig struct {
	Name          string `envconfig:"EDUSTORE_BANK_NAME" default:"MB Bank"`
	AccountNumber string `envconfig:"EDUSTORE_BANK_ACCOUNT_NUMBER" default:"0901234567"`
	AccountHolder string `envconfig:"EDUSTORE_BANK_ACCOUNT_HOLDER" default:"NGUYEN VAN A"`
}

type CheckoutConfig struct {
	IdempotencyTTL time.Duration `envconfig:"EDUSTORE_CHECKOUT_IDEMPOTENCY_TTL" default:"168h"`
}

type CronConfig struct {
	OrderExpiryDays int `envconfig:"EDUSTORE_CRON_ORDER_EXPIRY_DAYS" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
