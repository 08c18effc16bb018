package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	BaseHost string // public host prefix for portfolio URLs, e.g. http://localhost:8080

	// LLM provider selection: "openrouter" or "gemini"
	LLMProvider string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	GeminiAPIKey string
	GeminiModel  string

	LLMTimeoutSeconds int
	MaxPromptChars    int
	MinExtractChars   int

	// Store: sqlite file by default, Postgres when DATABASE_URL is set.
	DatabaseURL string
	SQLitePath  string

	UploadsDir   string
	ArtifactsDir string
	TemplateDir  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		BaseHost: getEnv("BASE_HOST", "http://localhost:8080"),

		LLMProvider: getEnv("LLM_PROVIDER", "openrouter"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "aifolio"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 90),
		MaxPromptChars:    getEnvInt("MAX_PROMPT_CHARS", 12000),
		MinExtractChars:   getEnvInt("MIN_EXTRACT_CHARS", 50),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/aifolio.db"),

		UploadsDir:   getEnv("UPLOADS_DIR", "uploads"),
		ArtifactsDir: getEnv("ARTIFACTS_DIR", "portfolios"),
		TemplateDir:  getEnv("TEMPLATE_DIR", "templates/portfolio"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
