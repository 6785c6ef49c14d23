package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	State     StateConfig
	Retrieval RetrievalConfig
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type StateConfig struct {
	// FilePath locates the single JSON file holding every session.
	FilePath string
}

type RetrievalConfig struct {
	CorpusDir       string
	TopK            int
	CacheTTLSeconds int
}

type AIConfig struct {
	LLMProvider      string // "openrouter" or "ollama"
	LLMModel         string
	OpenRouterAPIKey string
	OllamaBaseURL    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		State: StateConfig{
			FilePath: getEnv("STATE_FILE", "state.json"),
		},
		Retrieval: RetrievalConfig{
			CorpusDir:       getEnv("KNOWLEDGE_DIR", "knowledge"),
			TopK:            getEnvAsInt("RETRIEVAL_TOP_K", 3),
			CacheTTLSeconds: getEnvAsInt("RETRIEVAL_CACHE_TTL_SECONDS", 300),
		},
		Ai: AIConfig{
			LLMProvider:      getEnv("LLM_PROVIDER", "openrouter"),
			LLMModel:         getEnv("LLM_MODEL", "meta-llama/llama-3-8b-instruct"),
			OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
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
