package config

import "time"

// Config holds runtime configuration for the crawler process. Dates are
// deliberately absent: the date range is a CLI concern, not configuration.
type Config struct {
	// Provider selects the schedule/boxscore source: "nhl" or "fixture".
	Provider        string        `koanf:"provider"`
	ProviderBaseURL string        `koanf:"provider_base_url"`
	ProviderTimeout time.Duration `koanf:"provider_timeout"`

	// Store selects the output backend: "s3" or "fs".
	Store  string `koanf:"store"`
	FSPath string `koanf:"fs_path"`

	S3Endpoint  string `koanf:"s3_endpoint"`
	S3Region    string `koanf:"s3_region"`
	S3AccessKey string `koanf:"s3_access_key"`
	S3SecretKey string `koanf:"s3_secret_key"`
	S3Bucket    string `koanf:"s3_bucket"`
	S3UseSSL    bool   `koanf:"s3_use_ssl"`

	Table       string        `koanf:"table"`
	MaxAttempts int           `koanf:"max_attempts"`
	RetryWait   time.Duration `koanf:"retry_wait"`
	Concurrency int           `koanf:"concurrency"`

	SlackWebhookURL string `koanf:"slack_webhook_url"`

	MetricsEnabled bool   `koanf:"metrics_enabled"`
	MetricsPort    string `koanf:"metrics_port"`
	OtlpEndpoint   string `koanf:"otlp_endpoint"`
	OtlpInsecure   bool   `koanf:"otlp_insecure"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Provider:        "nhl",
		ProviderTimeout: 15 * time.Second,
		Store:           "s3",
		FSPath:          "data",
		S3Endpoint:      "s3.amazonaws.com",
		S3UseSSL:        true,
		S3Bucket:        "output",
		MaxAttempts:     5,
		RetryWait:       5 * time.Minute,
		Concurrency:     4,
		MetricsPort:     "9090",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}
