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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Warehouse        Warehouse        `mapstructure:",squash"`
	Sheets           Sheets           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database is the application database (users) connection.
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Warehouse is the analytics warehouse connection. Queries against it are
// read-only; the session-attribution joins run on the warehouse side.
type Warehouse struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"warehouse_driver"`
	Password      string `mapstructure:"warehouse_password"`
	URL           string `mapstructure:"warehouse_url"`
	User          string `mapstructure:"warehouse_user"`
	DatasetPrefix string `mapstructure:"warehouse_dataset_prefix"`
}

// Sheets locates the tracked-websites spreadsheet (read through its CSV export).
type Sheets struct {
	BaseURL   string `mapstructure:"sheet_base_url"`
	SheetID   string `mapstructure:"sheet_id"`
	Worksheet string `mapstructure:"sheet_worksheet"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WAREHOUSE_DRIVER", "postgres")
	viper.SetDefault("WAREHOUSE_URL", "localhost:5432/warehouse")
	viper.SetDefault("WAREHOUSE_USER", "postgres")
	viper.SetDefault("WAREHOUSE_PASSWORD", "root")
	viper.SetDefault("WAREHOUSE_DATASET_PREFIX", "analytics_")

	viper.SetDefault("SHEET_BASE_URL", "https://docs.google.com/spreadsheets/d")
	viper.SetDefault("SHEET_ID", "your_sheet_id")
	viper.SetDefault("SHEET_WORKSHEET", "Websites")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Cached fetches are reused for this long before hitting the warehouse again
	viper.SetDefault("CACHE_TTL", "1h")

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/30 * * * *")
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	config.Warehouse.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Warehouse.Driver,
		config.Warehouse.User,
		config.Warehouse.Password,
		config.Warehouse.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file via godotenv, trying a few locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
