package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"assettransfer/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "LEDGER"

const (
	minPort = 1
	maxPort = 65535
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMySQL    = "mysql"
	BackendRedis    = "redis"
)

type Config struct {
	HTTPPort     string
	StoreBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SQLitePath string
	MySQLDSN   string
	RedisAddr  string

	LogLevel       string
	TracingEnabled bool

	SnapshotBucket   string
	SnapshotEndpoint string
	SnapshotRegion   string
	SnapshotSchedule string
	OverdueSchedule  string

	ChaincodeID            string
	ChaincodeServerAddress string
}

// LoadConfig reads .env, the optional config file and LEDGER_* environment
// variables, in rising precedence. Keys are dotted in the file and
// underscored in the environment: db.host is LEDGER_DB_HOST.
func LoadConfig(configFile string) (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return Config{
		HTTPPort:               v.GetString("http.port"),
		StoreBackend:           strings.ToLower(v.GetString("store.backend")),
		DBHost:                 v.GetString("db.host"),
		DBPort:                 v.GetString("db.port"),
		DBUser:                 v.GetString("db.user"),
		DBPassword:             v.GetString("db.password"),
		DBName:                 v.GetString("db.name"),
		DBSslMode:              v.GetString("db.sslmode"),
		SQLitePath:             v.GetString("sqlite.path"),
		MySQLDSN:               v.GetString("mysql.dsn"),
		RedisAddr:              v.GetString("redis.addr"),
		LogLevel:               strings.ToLower(v.GetString("log.level")),
		TracingEnabled:         v.GetBool("tracing.enabled"),
		SnapshotBucket:         v.GetString("snapshot.bucket"),
		SnapshotEndpoint:       v.GetString("snapshot.endpoint"),
		SnapshotRegion:         v.GetString("snapshot.region"),
		SnapshotSchedule:       v.GetString("snapshot.schedule"),
		OverdueSchedule:        v.GetString("overdue.schedule"),
		ChaincodeID:            v.GetString("chaincode.id"),
		ChaincodeServerAddress: v.GetString("chaincode.server_address"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("sqlite.path", "ledger.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("snapshot.region", "us-east-1")
	v.SetDefault("snapshot.schedule", "0 0 3 * * *")
	v.SetDefault("overdue.schedule", "0 0 * * * *")

	// registered so AutomaticEnv resolves them
	for _, key := range []string{
		"db.host", "db.user", "db.password", "db.name",
		"mysql.dsn", "redis.addr",
		"snapshot.bucket", "snapshot.endpoint",
		"chaincode.id", "chaincode.server_address",
	} {
		v.SetDefault(key, "")
	}
}

// Validate reports every setting the selected backend is missing.
func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	} else if err := validatePort(c.HTTPPort); err != nil {
		problems = append(problems, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}

	switch c.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		for name, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				problems = append(problems, errs.NewValueIsRequiredError(name))
			}
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, errs.NewValueIsRequiredError("SQLITE_PATH"))
		}
	case BackendMySQL:
		if c.MySQLDSN == "" {
			problems = append(problems, errs.NewValueIsRequiredError("MYSQL_DSN"))
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			problems = append(problems, errs.NewValueIsRequiredError("REDIS_ADDR"))
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("STORE_BACKEND",
			fmt.Errorf("unknown backend %q", c.StoreBackend)))
	}

	return errors.Join(problems...)
}

func validatePort(value string) error {
	port, err := strconv.Atoi(value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", err)
	}
	if port < minPort || port > maxPort {
		return errs.NewValueIsOutOfRangeError("HTTP_PORT", port, minPort, maxPort)
	}
	return nil
}

// PostgresDSN builds the connection string for the postgres backend.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", fmt.Errorf("unknown level %q", level))
	}
}
