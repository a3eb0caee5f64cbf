package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	HealthMonitor HealthMonitor `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	Password        string        `mapstructure:"database_password"`
	PoolMaxOpen     int           `mapstructure:"database_pool_max_open"`
	PoolMaxIdle     int           `mapstructure:"database_pool_max_idle"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
	PingTimeout     time.Duration `mapstructure:"database_ping_timeout"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type HealthMonitor struct {
	CronSchedule string `mapstructure:"health_monitor_cron"`
	Enabled      bool   `mapstructure:"health_monitor_enabled"`
}

// Dashboard configures the terminal dashboard client.
type Dashboard struct {
	APIBaseURL     string        `mapstructure:"dashboard_api_base_url"`
	RequestTimeout time.Duration `mapstructure:"dashboard_request_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/surfsui?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_POOL_MAX_OPEN", 10)
	viper.SetDefault("DATABASE_POOL_MAX_IDLE", 2)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")
	viper.SetDefault("DATABASE_PING_TIMEOUT", "2s")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("HEALTH_MONITOR_CRON", "*/5 * * * *")
	viper.SetDefault("HEALTH_MONITOR_ENABLED", false)

	viper.SetDefault("DASHBOARD_API_BASE_URL", "http://localhost:4000")
	viper.SetDefault("DASHBOARD_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

// NewConfig reads the configuration once at process start. There is no
// hot-reload.
func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("no .env readable by viper, relying on environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("loaded .env from: ", location)
			return
		}
	}
}
