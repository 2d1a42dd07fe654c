package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Corpus   CorpusConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	UploadDir          string
}

type DatabaseConfig struct {
	// Connection is the primary (Postgres) connection string. Empty means
	// the gateway skips straight to the local SQLite fallback.
	Connection string
	SQLitePath string
}

type CorpusConfig struct {
	// SubjectsFilePath is the flat-file subject list used when no
	// relational backend is reachable.
	SubjectsFilePath string
	SubjectsDir      string
	DefaultSubjects  []string
}

type APIKeys struct {
	GoogleGemini string
	OpenAI       string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini", "ollama" or "openai"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "ollama" or "openai"
	LLMModel          string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			SQLitePath: getEnv("SQLITE_PATH", "./intelliject.db"),
		},
		Corpus: CorpusConfig{
			SubjectsFilePath: getEnv("SUBJECTS_FILE_PATH", "subjects.json"),
			SubjectsDir:      getEnv("SUBJECTS_DIR", "subjects"),
			DefaultSubjects:  getEnvAsList("DEFAULT_SUBJECTS", defaultSubjects),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
		},
	}
}

// defaultSubjects seeds an otherwise empty installation so the subject
// picker is never blank. Overridable via DEFAULT_SUBJECTS.
var defaultSubjects = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	parts := strings.Split(strValue, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
