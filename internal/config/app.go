package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"tradequotes/internal/quote"
)

type HTTPServer struct {
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Scheduler struct {
	JobDurationSec int `mapstructure:"job_duration_sec"`
}

type Cache struct {
	MaxPairs int64 `mapstructure:"max_pairs"`
}

// Trailing configures the trailing-stop job. Percent is a fraction, "0.02"
// trails 2% below the mark.
type Trailing struct {
	Percent string `mapstructure:"percent"`
}

func (t Trailing) Fraction() (decimal.Decimal, error) {
	f, err := decimal.NewFromString(t.Percent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid trailing percent %q: %w", t.Percent, err)
	}
	if f.IsNegative() || f.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("trailing percent must be in [0, 1), got %s", f)
	}
	return f, nil
}

type AppConfig struct {
	HTTPServer HTTPServer           `mapstructure:"http_server"`
	DbServer   DbServer             `mapstructure:"db_server"`
	Logging    Logging              `mapstructure:"logging"`
	Scheduler  Scheduler            `mapstructure:"scheduler"`
	Cache      Cache                `mapstructure:"cache"`
	Precision  quote.PrecisionTable `mapstructure:"precision"`
	Trailing   Trailing             `mapstructure:"trailing"`
}

// DefaultPath is read when no config file is given on the command line.
const DefaultPath = "config.yaml"

// Load reads the yaml file at path, then .env and the environment on top of it.
// A missing .env file is not an error.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("scheduler.job_duration_sec", 30)
	v.SetDefault("cache.max_pairs", 1024)
	v.SetDefault("precision.fiat", quote.DefaultPrecisions.Fiat)
	v.SetDefault("precision.stablecoin", quote.DefaultPrecisions.Stablecoin)
	v.SetDefault("precision.crypto", quote.DefaultPrecisions.Crypto)
	v.SetDefault("trailing.percent", "0.02")

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// app env vars
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("scheduler.job_duration_sec", "TRAILING_JOB_DURATION_SEC")
	_ = v.BindEnv("trailing.percent", "TRAILING_PERCENT")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Precision.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
