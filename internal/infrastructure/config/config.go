package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App            AppConfig
	Log            LogConfig
	DynamoDB       DynamoDBConfig
	Fiscal         FiscalConfig
	Storage        StorageConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Emission       EmissionConfig
	Reconciliation ReconciliationConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// DynamoDBConfig points at AWS or a local DynamoDB. Endpoint is optional.
type DynamoDBConfig struct {
	Region                 string
	Endpoint               string
	AccessKeyID            string
	SecretAccessKey        string
	DocumentsTable         string
	CorrectionLettersTable string
	CompaniesTable         string
	UsersTable             string
	OptionsTable           string
}

// FiscalConfig addresses the fiscal backend that signs and transmits documents.
type FiscalConfig struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	EmitTimeout       time.Duration
	ProbeTimeout      time.Duration
	RequestsPerSecond float64
	Burst             int
	MinPDFSize        int
	// Mock answers every fiscal call locally; development only.
	Mock bool
}

type StorageConfig struct {
	Bucket       string
	Region       string
	Endpoint     string
	UsePathStyle bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	QueueKey string
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

type EmissionConfig struct {
	JobRetention time.Duration
}

type ReconciliationConfig struct {
	Enabled      bool
	PollInterval time.Duration
	MaxAttempts  int
}

// Load reads configuration from an optional config.yaml and environment variables.
// Priority (highest to lowest):
//  1. Environment variables with NFE_ prefix (e.g. NFE_FISCAL_BASE_URL)
//  2. config.yaml
//  3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("NFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DynamoDB: DynamoDBConfig{
			Region:                 v.GetString("dynamodb.region"),
			Endpoint:               v.GetString("dynamodb.endpoint"),
			AccessKeyID:            v.GetString("dynamodb.access_key_id"),
			SecretAccessKey:        v.GetString("dynamodb.secret_access_key"),
			DocumentsTable:         v.GetString("dynamodb.documents_table"),
			CorrectionLettersTable: v.GetString("dynamodb.correction_letters_table"),
			CompaniesTable:         v.GetString("dynamodb.companies_table"),
			UsersTable:             v.GetString("dynamodb.users_table"),
			OptionsTable:           v.GetString("dynamodb.options_table"),
		},
		Fiscal: FiscalConfig{
			BaseURL:           v.GetString("fiscal.base_url"),
			APIKey:            v.GetString("fiscal.api_key"),
			Timeout:           v.GetDuration("fiscal.timeout"),
			EmitTimeout:       v.GetDuration("fiscal.emit_timeout"),
			ProbeTimeout:      v.GetDuration("fiscal.probe_timeout"),
			RequestsPerSecond: v.GetFloat64("fiscal.requests_per_second"),
			Burst:             v.GetInt("fiscal.burst"),
			MinPDFSize:        v.GetInt("fiscal.min_pdf_size"),
			Mock:              v.GetBool("fiscal.mock"),
		},
		Storage: StorageConfig{
			Bucket:       v.GetString("storage.bucket"),
			Region:       v.GetString("storage.region"),
			Endpoint:     v.GetString("storage.endpoint"),
			UsePathStyle: v.GetBool("storage.use_path_style"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			QueueKey: v.GetString("redis.queue_key"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Issuer:     v.GetString("jwt.issuer"),
			Expiration: v.GetDuration("jwt.expiration"),
		},
		Emission: EmissionConfig{
			JobRetention: v.GetDuration("emission.job_retention"),
		},
		Reconciliation: ReconciliationConfig{
			Enabled:      v.GetBool("reconciliation.enabled"),
			PollInterval: v.GetDuration("reconciliation.poll_interval"),
			MaxAttempts:  v.GetInt("reconciliation.max_attempts"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "nfe-backoffice"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.DynamoDB.Region == "" {
		cfg.DynamoDB.Region = "us-east-1"
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if cfg.DynamoDB.Endpoint != "" {
		if cfg.DynamoDB.AccessKeyID == "" {
			cfg.DynamoDB.AccessKeyID = "local"
		}
		if cfg.DynamoDB.SecretAccessKey == "" {
			cfg.DynamoDB.SecretAccessKey = "local"
		}
	}
	if cfg.DynamoDB.DocumentsTable == "" {
		cfg.DynamoDB.DocumentsTable = "fiscal_documents"
	}
	if cfg.DynamoDB.CorrectionLettersTable == "" {
		cfg.DynamoDB.CorrectionLettersTable = "correction_letters"
	}
	if cfg.DynamoDB.CompaniesTable == "" {
		cfg.DynamoDB.CompaniesTable = "companies"
	}
	if cfg.DynamoDB.UsersTable == "" {
		cfg.DynamoDB.UsersTable = "users"
	}
	if cfg.DynamoDB.OptionsTable == "" {
		cfg.DynamoDB.OptionsTable = "additional_options"
	}
	if cfg.Fiscal.BaseURL == "" {
		cfg.Fiscal.BaseURL = "http://localhost:5000"
	}
	if cfg.Fiscal.Timeout == 0 {
		cfg.Fiscal.Timeout = 30 * time.Second
	}
	if cfg.Fiscal.EmitTimeout == 0 {
		cfg.Fiscal.EmitTimeout = 90 * time.Second
	}
	if cfg.Fiscal.ProbeTimeout == 0 {
		cfg.Fiscal.ProbeTimeout = 5 * time.Second
	}
	if cfg.Fiscal.RequestsPerSecond == 0 {
		cfg.Fiscal.RequestsPerSecond = 10
	}
	if cfg.Fiscal.Burst == 0 {
		cfg.Fiscal.Burst = 5
	}
	if cfg.Fiscal.MinPDFSize == 0 {
		cfg.Fiscal.MinPDFSize = 1024
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = cfg.DynamoDB.Region
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.QueueKey == "" {
		cfg.Redis.QueueKey = "nfe:reconcile"
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "nfe-backoffice"
	}
	if cfg.JWT.Expiration == 0 {
		cfg.JWT.Expiration = 12 * time.Hour
	}
	if cfg.Emission.JobRetention == 0 {
		cfg.Emission.JobRetention = 30 * time.Minute
	}
	if cfg.Reconciliation.PollInterval == 0 {
		cfg.Reconciliation.PollInterval = 30 * time.Second
	}
	if cfg.Reconciliation.MaxAttempts == 0 {
		cfg.Reconciliation.MaxAttempts = 10
	}
}

func (c *Config) validate() error {
	if c.Fiscal.RequestsPerSecond < 0 {
		return fmt.Errorf("fiscal.requests_per_second cannot be negative")
	}
	if c.Reconciliation.MaxAttempts < 0 {
		return fmt.Errorf("reconciliation.max_attempts cannot be negative")
	}
	if !c.IsDevelopment() {
		if c.Fiscal.Mock {
			return fmt.Errorf("fiscal.mock is only allowed in development")
		}
		if c.JWT.Secret == "" {
			return fmt.Errorf("jwt.secret is required outside development")
		}
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("jwt.secret must be at least 32 characters outside development")
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == "test"
}
