package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	AppName     string `mapstructure:"APP_NAME"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Mail configuration. MailProvider is "graph" or "smtp".
	MailProvider   string `mapstructure:"MAIL_PROVIDER"`
	MailSender     string `mapstructure:"MAIL_SENDER_ADDRESS"`
	MSClientID     string `mapstructure:"MS_CLIENT_ID"`
	MSTenantID     string `mapstructure:"MS_TENANT_ID"`
	MSClientSecret string `mapstructure:"MS_CLIENT_SECRET"`
	MSGraphBaseURL string `mapstructure:"MS_GRAPH_BASE_URL"`
	MSLoginBaseURL string `mapstructure:"MS_LOGIN_BASE_URL"`
	MailTimeoutSec int    `mapstructure:"MAIL_TIMEOUT_SEC"`
	SMTPHost       string `mapstructure:"SMTP_HOST"`
	SMTPPort       int    `mapstructure:"SMTP_PORT"`
	SMTPUsername   string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword   string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom       string `mapstructure:"SMTP_FROM"`

	// OTP configuration
	OTPTTL             time.Duration `mapstructure:"OTP_TTL"`
	OTPMaxSends        int           `mapstructure:"OTP_MAX_SENDS"`
	OTPCleanupInterval time.Duration `mapstructure:"OTP_CLEANUP_INTERVAL"`

	// Security configuration
	BcryptCost int    `mapstructure:"BCRYPT_COST"`
	CronSecret string `mapstructure:"CRON_SECRET"`
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_NAME", "Quickdesk")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "quickdesk")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL", "24h")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Mail defaults. Secrets have no defaults: a missing secret fails the send
	// with a configuration error instead of silently degrading.
	viper.SetDefault("MAIL_PROVIDER", "graph")
	viper.SetDefault("MAIL_SENDER_ADDRESS", "")
	viper.SetDefault("MS_CLIENT_ID", "")
	viper.SetDefault("MS_TENANT_ID", "")
	viper.SetDefault("MS_CLIENT_SECRET", "")
	viper.SetDefault("MS_GRAPH_BASE_URL", "https://graph.microsoft.com/v1.0")
	viper.SetDefault("MS_LOGIN_BASE_URL", "https://login.microsoftonline.com")
	viper.SetDefault("MAIL_TIMEOUT_SEC", 15)
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")

	// OTP defaults
	viper.SetDefault("OTP_TTL", "3m")
	viper.SetDefault("OTP_MAX_SENDS", 3)
	viper.SetDefault("OTP_CLEANUP_INTERVAL", "0s")

	// Security defaults
	viper.SetDefault("BCRYPT_COST", 12)
	viper.SetDefault("CRON_SECRET", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.CronSecret == "" {
			return fmt.Errorf("CRON_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.MailProvider {
	case "graph", "smtp":
	default:
		return fmt.Errorf("MAIL_PROVIDER must be 'graph' or 'smtp', got '%s'", config.MailProvider)
	}

	if config.OTPTTL <= 0 {
		return fmt.Errorf("OTP_TTL must be positive")
	}
	if config.OTPMaxSends < 1 {
		return fmt.Errorf("OTP_MAX_SENDS must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
