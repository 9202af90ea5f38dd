package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Keys   APIKeys
	Ai     AIConfig
	Speech SpeechConfig
	Policy PolicyConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	HostingMode        string // "local" or "cloud" (constrained hosting, no audio device)
}

type APIKeys struct {
	OpenAI string
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string // e.g. "gpt-4o", "llama3"
	OllamaBaseURL string
}

type SpeechConfig struct {
	STTModel             string
	STTLanguage          string
	TTSModel             string
	TTSVoice             string
	SampleRate           int
	CaptureWindowSeconds int
}

type PolicyConfig struct {
	// RequireResume blocks answer generation until a resume has been
	// uploaded for the session. Off by default.
	RequireResume bool
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
			HostingMode:        getEnv("HOSTING_MODE", getEnv("STREAMLIT_RUNTIME_ENV", "local")),
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4o"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Speech: SpeechConfig{
			STTModel:             getEnv("STT_MODEL", "whisper-1"),
			STTLanguage:          getEnv("STT_LANGUAGE", "en"),
			TTSModel:             getEnv("TTS_MODEL", "tts-1"),
			TTSVoice:             getEnv("TTS_VOICE", "alloy"),
			SampleRate:           getEnvAsInt("AUDIO_SAMPLE_RATE", 16000),
			CaptureWindowSeconds: getEnvAsInt("CAPTURE_WINDOW_SECONDS", 15),
		},
		Policy: PolicyConfig{
			RequireResume: getEnvAsBool("REQUIRE_RESUME_CONTEXT", false),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
