package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Rental inventory specifics
	Mongo   MongoConfig
	Auth    AuthConfig
	Storage StorageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// AuthConfig configures token issuance and the session cookie.
type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool
	// LoginRatePerMin bounds login attempts per client IP.
	LoginRatePerMin int
}

// StorageConfig configures the object storage bucket used for item images.
type StorageConfig struct {
	SupabaseURL    string
	SupabaseAPIKey string
	Bucket         string
	Folder         string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// MongoDB
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Database = viper.GetString("mongo.database")
	cfg.Mongo.ConnectTimeout = viper.GetDuration("mongo.connect_timeout")
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("mongo.uri is required - set mongo.uri in config.yaml or MONGO_URI in env")
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.CookieName = viper.GetString("auth.cookie_name")
	cfg.Auth.CookieSecure = viper.GetBool("auth.cookie_secure")
	cfg.Auth.LoginRatePerMin = viper.GetInt("auth.login_rate_per_min")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set auth.jwt_secret in config.yaml or JWT_SECRET in env")
	}

	// Object storage (optional - image upload answers 503 when unset)
	cfg.Storage.SupabaseURL = viper.GetString("storage.supabase_url")
	cfg.Storage.SupabaseAPIKey = viper.GetString("storage.supabase_api_key")
	cfg.Storage.Bucket = viper.GetString("storage.bucket")
	cfg.Storage.Folder = viper.GetString("storage.folder")
	if supabaseKey := viper.GetString("supabase_api_key"); supabaseKey != "" {
		cfg.Storage.SupabaseAPIKey = supabaseKey
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("mongo.database", "disc_rental")
	viper.SetDefault("mongo.connect_timeout", "10s")
	viper.SetDefault("auth.token_ttl", "168h") // 7 days, matches cookie max-age
	viper.SetDefault("auth.cookie_name", "auth_token")
	viper.SetDefault("auth.cookie_secure", false)
	viper.SetDefault("auth.login_rate_per_min", 10)
	viper.SetDefault("storage.bucket", "images")
	viper.SetDefault("storage.folder", "items")
}
