package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Sanity        SanityConfig
	Storage       StorageConfig
	Auth          AuthConfig
	ReCAPTCHA     ReCAPTCHAConfig
	EventTriggers EventTriggerFunctionsConfig
	NextJS        NextJSConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL         string
	MaxConns    int32
	MinConns    int32
	WorkOffline bool
}

// SanityConfig configures the primary CMS data source. An empty ProjectID
// leaves the CMS unconfigured and the API serves the bundled fallback dataset.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
}

type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
}

type AuthConfig struct {
	WebhookSecret string
}

type ReCAPTCHAConfig struct {
	SecretKey string
	SiteKey   string
}

type EventTriggerFunctionsConfig struct {
	ContactCreatedTriggerURL     string
	ApplicationCreatedTriggerURL string
}

type NextJSConfig struct {
	BaseURL          string
	RevalidateSecret string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	AlloyEndpoint     string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	ContentTTLSeconds   int // Content cache TTL in seconds
	PostsTTLSeconds     int // Blog posts change more often than the rest
	DisableContentCache bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://pixelforge.io")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://pixelforge.io,https://www.pixelforge.io")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("NEXTJS_BASE_URL", "http://localhost:3000")
	v.SetDefault("SANITY_DATASET", "production")
	v.SetDefault("SANITY_API_VERSION", "2023-08-01")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "alloy:4318") // OTLP over HTTP
	v.SetDefault("O11Y_BE_SERVICE_NAME", "pixelforge-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "pixelforge-io")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "pixelforge-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("CONTENT_CACHE_TTL", 600) // 10 minutes in seconds
	v.SetDefault("POSTS_CACHE_TTL", 300)
	v.SetDefault("DISABLE_CONTENT_CACHE", false)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: allowedOrigins,
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			MaxConns:    20,
			MinConns:    2,
			WorkOffline: v.GetBool("DB_WORK_OFFLINE"),
		},
		Sanity: SanityConfig{
			ProjectID:  v.GetString("SANITY_PROJECT_ID"),
			Dataset:    v.GetString("SANITY_DATASET"),
			APIVersion: v.GetString("SANITY_API_VERSION"),
			Token:      v.GetString("SANITY_API_TOKEN"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
		},
		Auth: AuthConfig{
			WebhookSecret: v.GetString("SANITY_WEBHOOK_SECRET"),
		},
		ReCAPTCHA: ReCAPTCHAConfig{
			SecretKey: v.GetString("RECAPTCHA_V2_SECRET_KEY"),
			SiteKey:   v.GetString("NEXT_PUBLIC_RECAPTCHA_V2_SITE_KEY"),
		},
		EventTriggers: EventTriggerFunctionsConfig{
			ContactCreatedTriggerURL:     v.GetString("CONTACT_CREATED_TRIGGER_URL"),
			ApplicationCreatedTriggerURL: v.GetString("APPLICATION_CREATED_TRIGGER_URL"),
		},
		NextJS: NextJSConfig{
			BaseURL:          v.GetString("NEXTJS_BASE_URL"),
			RevalidateSecret: v.GetString("NEXTJS_REVALIDATE_SECRET"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			AlloyEndpoint:     v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			ContentTTLSeconds:   v.GetInt("CONTENT_CACHE_TTL"),
			PostsTTLSeconds:     v.GetInt("POSTS_CACHE_TTL"),
			DisableContentCache: v.GetBool("DISABLE_CONTENT_CACHE"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	// Database configuration
	if !c.Database.WorkOffline && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when not in offline mode")
	}

	// ReCAPTCHA configuration
	if c.ReCAPTCHA.SecretKey == "" {
		return fmt.Errorf("RECAPTCHA_V2_SECRET_KEY is required")
	}

	// Server configuration
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	// The Sanity project is optional, but when set the dataset must be too
	if c.Sanity.ProjectID != "" && c.Sanity.Dataset == "" {
		return fmt.Errorf("SANITY_DATASET is required when SANITY_PROJECT_ID is set")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
