package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config is the process configuration. LoadConfig fills it from an optional
// YAML file, then from the environment, then from defaults.
type Config struct {
	HTTPPort string `yaml:"http_port"`
	Storage  string `yaml:"storage"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`

	RabbitMQURL      string `yaml:"rabbitmq_url"`
	RabbitMQExchange string `yaml:"rabbitmq_exchange"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// TimeZone is the zone job dates and times are read in.
	TimeZone             string `yaml:"time_zone"`
	ExpiryReportSchedule string `yaml:"expiry_report_schedule"`
}

// LoadConfig reads path when it is not empty. Environment variables override
// file values; unset keys get defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errList []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errList = append(errList, fmt.Errorf("http port %q must be a number between 1 and 65535", c.HTTPPort))
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			errList = append(errList, errors.New("postgres storage needs DB_HOST and DB_NAME"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown storage %q, want %s or %s", c.Storage, StorageMemory, StoragePostgres))
	}

	if c.JWTSecret == "" {
		errList = append(errList, errors.New("JWT secret is required"))
	}
	if c.TokenTTL < 0 {
		errList = append(errList, fmt.Errorf("token TTL %s must not be negative", c.TokenTTL))
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		errList = append(errList, fmt.Errorf("unknown log format %q, want console or json", c.LogFormat))
	}

	if _, err := c.Location(); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}

// Location resolves TimeZone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"HTTP_PORT":              &c.HTTPPort,
		"STORAGE":                &c.Storage,
		"DB_HOST":                &c.DBHost,
		"DB_PORT":                &c.DBPort,
		"DB_USER":                &c.DBUser,
		"DB_PASSWORD":            &c.DBPassword,
		"DB_NAME":                &c.DBName,
		"DB_SSLMODE":             &c.DBSslMode,
		"JWT_SECRET":             &c.JWTSecret,
		"RABBITMQ_URL":           &c.RabbitMQURL,
		"RABBITMQ_EXCHANGE":      &c.RabbitMQExchange,
		"LOG_LEVEL":              &c.LogLevel,
		"LOG_FORMAT":             &c.LogFormat,
		"TIME_ZONE":              &c.TimeZone,
		"EXPIRY_REPORT_SCHEDULE": &c.ExpiryReportSchedule,
	}
	for key, field := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*field = strings.TrimSpace(v)
		}
	}

	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		ttl, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		c.TokenTTL = ttl
	}

	return nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.HTTPPort, "8080")
	setDefault(&c.Storage, StorageMemory)
	setDefault(&c.DBPort, "5432")
	setDefault(&c.DBSslMode, "disable")
	setDefault(&c.RabbitMQExchange, "jobboard.events")
	setDefault(&c.LogLevel, "info")
	setDefault(&c.LogFormat, "console")
	setDefault(&c.TimeZone, "Local")
	setDefault(&c.ExpiryReportSchedule, "0 * * * * *")
	if c.TokenTTL == 0 {
		c.TokenTTL = 7 * 24 * time.Hour
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
