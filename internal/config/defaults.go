package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	defaultTokenIssuer      = "task-tracker"
	defaultTokenDuration    = 2400 * time.Hour
	defaultPasswordHashCost = 10
	defaultVersion          = "dev"

	defaultDBDriver        = DriverPostgres
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute

	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	defaultLogLevel = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			Version:          defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver:          defaultDBDriver,
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}
