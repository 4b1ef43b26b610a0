package common

import (
	"os"
	"strconv"
	"time"

	"github.com/liang-qiu/clausecheck/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Judge    JudgeConfig
	Analysis AnalysisConfig
	Watch    WatchConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds extraction-related configuration
type OCRConfig struct {
	TesseractLang string
	DPI           int
	MaxPages      int
	MinPageChars  int
}

// JudgeConfig holds judgment-collaborator configuration
type JudgeConfig struct {
	Model          string
	APIKey         string
	BaseURL        string
	Temperature    float32
	MaxTokens      int
	Timeout        time.Duration
	MaxInvocations int
	Structured     bool
	// Disabled runs match-only analysis; every pair stays UNKNOWN.
	Disabled bool
}

// AnalysisConfig holds segmentation and matching knobs
type AnalysisConfig struct {
	MinSimilarity  float64
	Precision      constants.Precision
	MaxClauses     int
	MaxJudgedPairs int
	JudgeWorkers   int
	KeepPreamble   bool
}

// WatchConfig holds drop-directory watcher configuration
type WatchConfig struct {
	Root          string
	BenchmarkPath string
	Debounce      time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			TesseractLang: getEnv("TESSERACT_LANG", "chi_sim+eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			MinPageChars:  getEnvAsInt("OCR_MIN_PAGE_CHARS", 50),
		},
		Judge: JudgeConfig{
			Model:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			BaseURL:        getEnv("OPENAI_BASE_URL", ""),
			Temperature:    getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			MaxTokens:      getEnvAsInt("OPENAI_MAX_TOKENS", 512),
			Timeout:        getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			MaxInvocations: getEnvAsInt("JUDGE_MAX_INVOCATIONS", 50),
			Structured:     getEnvAsBool("JUDGE_STRUCTURED", false),
			Disabled:       getEnvAsBool("JUDGE_DISABLED", false),
		},
		Analysis: AnalysisConfig{
			MinSimilarity:  getEnvAsFloat64("MATCH_MIN_SIMILARITY", 0.35),
			Precision:      constants.ParsePrecision(getEnv("SEGMENT_PRECISION", "MEDIUM")),
			MaxClauses:     getEnvAsInt("SEGMENT_MAX_CLAUSES", 200),
			MaxJudgedPairs: getEnvAsInt("JUDGE_MAX_PAIRS", 50),
			JudgeWorkers:   getEnvAsInt("JUDGE_WORKERS", 1),
			KeepPreamble:   getEnvAsBool("SEGMENT_KEEP_PREAMBLE", false),
		},
		Watch: WatchConfig{
			Root:          getEnv("WATCH_ROOT", ""),
			BenchmarkPath: getEnv("WATCH_BENCHMARK", ""),
			Debounce:      getEnvAsDuration("WATCH_DEBOUNCE", 2*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration. A missing judgment credential is
// fatal before any per-document work begins, unless judgment is disabled.
func (c *Config) Validate() error {
	if !c.Judge.Disabled && c.Judge.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required unless JUDGE_DISABLED=true", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Analysis.MinSimilarity < 0 || c.Analysis.MinSimilarity > 1 {
		return NewAppError("CONFIG_ERROR", "MATCH_MIN_SIMILARITY must be in [0,1]", ErrInvalidInput)
	}
	return nil
}
