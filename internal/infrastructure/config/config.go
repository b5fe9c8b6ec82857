package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Groq     GroqConfig     `mapstructure:"groq"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Cache    CacheConfig    `mapstructure:"cache"`
	LogLevel string         `mapstructure:"log_level"`
}

// AppConfig holds application metadata.
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// GroqConfig holds completion service settings. An empty APIKey is not an
// error: the chat flow routes to the deterministic fallback instead.
type GroqConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// HasCredential reports whether a completion credential is configured.
func (g GroqConfig) HasCredential() bool {
	return strings.TrimSpace(g.APIKey) != ""
}

// AdminConfig holds the admin surface settings.
type AdminConfig struct {
	Password      string        `mapstructure:"password"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
}

// StorageConfig selects the recipe store backend. MySQL is used when host,
// user and database name are all present; otherwise the JSON file store.
type StorageConfig struct {
	FilePath string `mapstructure:"file_path"`
	DBHost   string `mapstructure:"db_host"`
	DBPort   int    `mapstructure:"db_port"`
	DBUser   string `mapstructure:"db_user"`
	DBPass   string `mapstructure:"db_pass"`
	DBName   string `mapstructure:"db_name"`
	DBTable  string `mapstructure:"db_table"`
}

// HasDBConfig reports whether the MySQL backend is configured.
func (s StorageConfig) HasDBConfig() bool {
	return s.DBHost != "" && s.DBUser != "" && s.DBName != ""
}

// CacheConfig holds the optional Redis completion cache settings.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Addr    string        `mapstructure:"addr"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// LoadConfig reads configuration from .env and the environment.
func LoadConfig() (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Environment names kept compatible with the deployed product.
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("groq.api_key", "GROQ_API_KEY")
	viper.BindEnv("groq.model", "GROQ_MODEL")
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	viper.BindEnv("admin.session_secret", "ADMIN_SESSION_SECRET")
	viper.BindEnv("admin.session_ttl", "ADMIN_SESSION_TTL")
	viper.BindEnv("storage.file_path", "STORE_PATH")
	viper.BindEnv("storage.db_host", "DB_HOST")
	viper.BindEnv("storage.db_port", "DB_PORT")
	viper.BindEnv("storage.db_user", "DB_USER")
	viper.BindEnv("storage.db_pass", "DB_PASSWORD")
	viper.BindEnv("storage.db_name", "DB_NAME")
	viper.BindEnv("storage.db_table", "DB_TABLE")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.addr", "CACHE_ADDR")
	viper.BindEnv("cache.ttl", "CACHE_TTL")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey hides all but the first and last 4 characters of a key.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-chat")

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("groq.model", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.timeout", "60s")

	viper.SetDefault("admin.password", "admin123")
	viper.SetDefault("admin.session_secret", "change-this-admin-session-secret")
	viper.SetDefault("admin.session_ttl", "12h")

	viper.SetDefault("storage.file_path", "tmp/store.json")
	viper.SetDefault("storage.db_port", 3306)
	viper.SetDefault("storage.db_table", "recipes")

	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.addr", "localhost:6379")
	viper.SetDefault("cache.ttl", "24h")

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}
	if config.Admin.SessionTTL <= 0 {
		return fmt.Errorf("invalid admin session ttl")
	}
	if config.Cache.Enabled {
		if config.Cache.Addr == "" {
			return fmt.Errorf("cache addr is required when cache is enabled")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
	}
	return nil
}
