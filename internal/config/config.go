package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Ai      AIConfig
	Doc     DocServiceConfig
	Preview PreviewConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AIConfig struct {
	Provider string // "openai", "anthropic" or "bedrock"
	APIKey   string
	Region   string // bedrock only
	ModelID  string
	BaseURL  string // optional vendor endpoint override

	DefaultTemperature float64
	DefaultLength      string
	GenerationPasses   int // full passes per generate-all run
}

type DocServiceConfig struct {
	// Base URL of the external document-processing collaborator
	// (ingestion + context retrieval), e.g. http://localhost:8000/api
	BaseURL string
}

type PreviewConfig struct {
	Backend    string // "memory" or "redis"
	RedisURL   string
	TTLMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Ai: AIConfig{
			Provider:           getEnv("AI_PROVIDER", "openai"),
			APIKey:             getEnv("AI_API_KEY", ""),
			Region:             getEnv("AWS_REGION", ""),
			ModelID:            getEnv("AI_MODEL_ID", ""),
			BaseURL:            getEnv("AI_BASE_URL", ""),
			DefaultTemperature: getEnvAsFloat("AI_DEFAULT_TEMPERATURE", 0.7),
			DefaultLength:      getEnv("AI_DEFAULT_LENGTH", "As needed for comprehensive coverage"),
			GenerationPasses:   getEnvAsInt("AI_GENERATION_PASSES", 1),
		},
		Doc: DocServiceConfig{
			BaseURL: getEnv("DOC_SERVICE_URL", "http://localhost:8000/api"),
		},
		Preview: PreviewConfig{
			Backend:    getEnv("PREVIEW_BACKEND", "memory"),
			RedisURL:   getEnv("REDIS_URL", "redis://localhost:6379"),
			TTLMinutes: getEnvAsInt("PREVIEW_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
