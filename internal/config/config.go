package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Storage    StorageConfig
	OpenRouter OpenRouterConfig
	Auth       AuthConfig
	Logger     LoggerConfig
	Generation GenerationConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// StorageConfig points at the object store holding uploaded course
// materials (a Supabase storage bucket in the original deployment).
type StorageConfig struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Referer string
	Title   string
}

type AuthConfig struct {
	JWTSecret string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type GenerationConfig struct {
	// MaxInputTokens bounds the text slice sent to the model,
	// estimated at roughly 4 characters per token.
	MaxInputTokens int
	// ExtractedTextCacheTTL controls the Redis cache-aside layer in
	// front of extracted_texts reads. Zero disables expiry.
	ExtractedTextCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("openrouter.model", "openai/gpt-4o-mini")
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.referer", "https://quizai.app")
	viper.SetDefault("openrouter.title", "QuizAI Quiz Generator")
	viper.SetDefault("storage.bucket", "course-materials")
	viper.SetDefault("generation.max_input_tokens", 100000)
	viper.SetDefault("generation.extracted_text_cache_ttl", 3600)
	viper.SetDefault("logger.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; environment variables can
		// carry the whole configuration.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Env: viper.GetString("env"),
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Database: DatabaseConfig{
			DSN: viper.GetString("database.dsn"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Storage: StorageConfig{
			BaseURL:    viper.GetString("storage.base_url"),
			ServiceKey: viper.GetString("storage.service_key"),
			Bucket:     viper.GetString("storage.bucket"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  viper.GetString("openrouter.api_key"),
			Model:   viper.GetString("openrouter.model"),
			BaseURL: viper.GetString("openrouter.base_url"),
			Referer: viper.GetString("openrouter.referer"),
			Title:   viper.GetString("openrouter.title"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("env"),
		},
		Generation: GenerationConfig{
			MaxInputTokens:        viper.GetInt("generation.max_input_tokens"),
			ExtractedTextCacheTTL: viper.GetDuration("generation.extracted_text_cache_ttl") * time.Second,
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Env = env
		config.Logger.Env = env
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.Database.DSN = dsn
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		config.OpenRouter.APIKey = apiKey
	}
	if model := os.Getenv("OPENROUTER_MODEL"); model != "" {
		config.OpenRouter.Model = model
	}
	if referer := os.Getenv("OPENROUTER_HTTP_REFERER"); referer != "" {
		config.OpenRouter.Referer = referer
	}
	if baseURL := os.Getenv("SUPABASE_URL"); baseURL != "" {
		config.Storage.BaseURL = baseURL
	}
	if serviceKey := os.Getenv("SUPABASE_SERVICE_KEY"); serviceKey != "" {
		config.Storage.ServiceKey = serviceKey
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}

	return config, nil
}
