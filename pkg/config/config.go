package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	PostgresURL string

	LLMProvider   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string

	AmapKey            string
	AmapBaseURL        string
	GeocodeCacheTTL    time.Duration
	GeocodeConcurrency int

	JWTSecret       string
	DefaultTimezone string

	// Extra cell values the itinerary parser treats as non-names.
	ExtraNoiseKeywords []string
}

// Qwen through DashScope's OpenAI compatible endpoint.
const defaultOpenAIBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// LoadEnv reads a .env file when one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}
}

// Load builds the Config from the environment, applying defaults.
func Load() Config {
	LoadEnv()

	provider := getEnvWithDefault("LLM_PROVIDER", "openai")

	return Config{
		Env:  getEnvWithDefault("APP_ENV", "development"),
		Port: getEnvWithDefault("PORT", "8080"),

		PostgresURL: os.Getenv("POSTGRES_URL"),

		LLMProvider:   provider,
		OpenAIAPIKey:  firstNonEmpty(os.Getenv("QWEN_API_KEY"), os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: getEnvWithDefault("OPENAI_BASE_URL", defaultOpenAIBaseURL),
		OpenAIModel:   firstNonEmpty(os.Getenv("QWEN_MODEL"), getEnvWithDefault("OPENAI_MODEL", "qwen-turbo")),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),

		AmapKey:            os.Getenv("AMAP_KEY"),
		AmapBaseURL:        getEnvWithDefault("AMAP_BASE_URL", "https://restapi.amap.com"),
		GeocodeCacheTTL:    getDurationWithDefault("GEOCODE_CACHE_TTL", 24*time.Hour),
		GeocodeConcurrency: getIntWithDefault("GEOCODE_CONCURRENCY", 5),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		DefaultTimezone: getEnvWithDefault("DEFAULT_TIMEZONE", "Asia/Shanghai"),

		ExtraNoiseKeywords: getListEnv("ITINERARY_NOISE_KEYWORDS"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getListEnv(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
