package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is resolved once at process start and passed by reference into
// service constructors; nothing reads the environment after Load.
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type LLMConfig struct {
	APIKey         string
	Model          string
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	Temperature    float64
}

type PipelineConfig struct {
	// BatchSize bounds how many line items go into one model call.
	BatchSize int
	// MaxLineItems silently truncates oversized uploads. This is a
	// guardrail against extreme files, not an error condition.
	MaxLineItems int
	// TopMerchantsPerCategory bounds the merchant list in each
	// category aggregate.
	TopMerchantsPerCategory int
	// Per-operation output token limits handed to the gateway.
	CategorizeMaxTokens int
	InsightsMaxTokens   int
	ReviewMaxTokens     int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
		},
		LLM: LLMConfig{
			APIKey:         os.Getenv("ANTHROPIC_API_KEY"),
			Model:          getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
			BaseURL:        os.Getenv("ANTHROPIC_BASE_URL"),
			ConnectTimeout: getDurationEnv("LLM_CONNECT_TIMEOUT", 20*time.Second),
			RequestTimeout: getDurationEnv("LLM_REQUEST_TIMEOUT", 60*time.Second),
			Temperature:    getFloatEnv("LLM_TEMPERATURE", 0.2),
		},
		Pipeline: PipelineConfig{
			BatchSize:               getIntEnv("PIPELINE_BATCH_SIZE", 25),
			MaxLineItems:            getIntEnv("PIPELINE_MAX_LINE_ITEMS", 2000),
			TopMerchantsPerCategory: getIntEnv("PIPELINE_TOP_MERCHANTS", 5),
			CategorizeMaxTokens:     getIntEnv("LLM_CATEGORIZE_MAX_TOKENS", 700),
			InsightsMaxTokens:       getIntEnv("LLM_INSIGHTS_MAX_TOKENS", 600),
			ReviewMaxTokens:         getIntEnv("LLM_REVIEW_MAX_TOKENS", 1400),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.LLM.APIKey == "" {
		log.Fatal("ANTHROPIC_API_KEY environment variable must be set")
	}

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
